//go:build windows

package engine

import (
	"os/exec"
	"syscall"
)

func detachedAttr() *syscall.SysProcAttr {
	return nil
}

func terminate(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
