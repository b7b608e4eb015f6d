package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// CreateVenv provisions a virtual environment at <dir>/venv using the given
// Python interpreter. The interpreter's output is forwarded to the user.
func CreateVenv(dir, python string) error {
	fmt.Println("Creating virtual environment...")

	cmd := exec.Command(python, "-m", "venv", filepath.Join(dir, "venv"))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to create virtual environment with %s: %w", python, err)
	}

	fmt.Println("Virtual environment created at ./venv")
	return nil
}
