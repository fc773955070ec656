//go:build !windows

package engine

import (
	"os/exec"
	"syscall"
)

// detachedAttr puts mpv in its own process group so terminal signals aimed at the TUI skip it.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// terminate kills mpv together with its process group.
func terminate(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
