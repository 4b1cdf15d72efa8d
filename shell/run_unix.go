//go:build unix

package shell

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup puts the child in its own process group so the whole tree
// it may have forked can be killed in one shot.
func setProcessGroup(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup signals the negative PGID, which the kernel delivers to
// every process in the group started by setProcessGroup.
func killProcessGroup(c *exec.Cmd) {
	if c.Process == nil {
		return
	}
	_ = unix.Kill(-c.Process.Pid, unix.SIGKILL)
}
