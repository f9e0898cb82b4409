package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RecordLaunch appends a one-line launch record to
// <logDir>/launches.log, creating the directory if needed. Callers
// treat failures as warnings; a launch never aborts over its record.
func RecordLaunch(logDir, mode string, plan *Plan) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	line := fmt.Sprintf("%s mode=%s exe=%s args=%q\n",
		time.Now().Format(time.RFC3339), mode, plan.Exe, strings.Join(plan.Args, " "))

	f, err := os.OpenFile(filepath.Join(logDir, "launches.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line)
	return err
}
