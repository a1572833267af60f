package shell

import (
	"io"
	"os"
	"os/exec"
)

const DefaultShell = "sh"

// RelayCmd executes cmd with shell, streaming its output to stdout and stderr
// and waiting for completion. When stdout/stderr are *os.File, child inherits descriptors as is.
// environment variables are provided as string slice of "<name>=<value>" entries
func RelayCmd(shell, cmd string, env []string, stdout, stderr io.Writer) error {
	if shell == "" {
		shell = DefaultShell
	}
	c := exec.Command(shell, "-c", cmd)
	c.Env = append(os.Environ(), env...)
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}
