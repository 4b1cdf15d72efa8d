//go:build !unix

package shell

import "os/exec"

// setProcessGroup is a no-op outside unix: there is no portable process-group
// primitive here, so a timed-out command's children may outlive it.
func setProcessGroup(c *exec.Cmd) {}

// killProcessGroup falls back to killing just the direct child.
func killProcessGroup(c *exec.Cmd) {
	if c.Process == nil {
		return
	}
	_ = c.Process.Kill()
}
