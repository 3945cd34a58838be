package sdkversion

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// checkGit verifies that git is available on the system.
func checkGit() error {
	cmd := exec.Command("git", "--version")
	if err := cmd.Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

// gitCommit stages files, commits them with message, and tags the commit.
// Commands run in dir. Nothing is pushed.
func gitCommit(dir, message, tag string, files []string) error {
	run := func(args ...string) error {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("git %s failed: %v, detail: %s", args[0], err, stderr.String())
		}
		return nil
	}

	if err := run(append([]string{"add", "--"}, files...)...); err != nil {
		return err
	}
	if err := run("commit", "-m", message); err != nil {
		return err
	}
	return run("tag", tag)
}
