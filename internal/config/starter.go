package config

// Starter is the commented config written by `querygguf init`.
const Starter = `# querygguf configuration
#
# llama_cli points at the llama.cpp llama-cli binary, e.g.
# llama_cli = "/home/you/llama.cpp/build/bin/llama-cli"
llama_cli = ""

default_mode = "example"

# Launch the query session in a new terminal window instead of the
# current one.
terminal_launch = false

# Directories scanned for .gguf files by 'querygguf manual'.
model_dirs = ["~/models"]

# Relative paths resolve under the config directory.
prompts_dir = "prompts"

# When enabled, a one-line launch record is appended to
# <log_dir>/launches.log before each launch.
logging_enabled = false
log_dir = "chatlogs"

# Each [[mode]] is a named launch preset. Omitted sampling keys fall
# back to temp=0.8, top_k=40, top_p=0.9, ctx_size=2048.
[[mode]]
name = "example"
description = "edit me"
model = "~/models/your-model.gguf"
prompt_file = "prompts/blankprompt.txt"
temp = 0.8
top_k = 40
top_p = 0.9
ctx_size = 2048
threads = 0            # 0 = host CPU count - 1
gpu = false
gpu_layers = 0
interactive_first = true
`

// BlankPrompt is written to prompts/blankprompt.txt by `querygguf init`
// so modes without a specific prompt have something to point at.
const BlankPrompt = "# Blank prompt file\n"
