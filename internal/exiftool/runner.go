package exiftool

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts the ExifTool process boundary so the dump pipeline can be
// tested without a real ExifTool install.
type Runner interface {
	// LookPath resolves the executable name against the search path.
	LookPath(name string) (string, error)
	// Run executes argv[0] with argv[1:], streaming its standard output into
	// stdout. Standard error passes through to the caller's terminal.
	Run(argv []string, stdout io.Writer) error
}

// ExecRunner runs ExifTool as a child process via os/exec
type ExecRunner struct{}

// NewRunner returns the process-backed Runner used outside of tests
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) Run(argv []string, stdout io.Writer) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
