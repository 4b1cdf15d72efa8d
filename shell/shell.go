// Package shell implements the default Exec hook (spec §6.3): running a
// command string through the platform shell, capturing its standard output,
// and killing the whole process group on timeout rather than leaking
// orphaned children.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultTimeout bounds how long a single Exec command may run before it is
// killed. Spec §6.3 leaves the exact bound to the host; this is the value
// the Runner engine.New installs by default uses. A different bound takes a
// Runner with its own Timeout, installed through engine.WithShell.
const DefaultTimeout = 10 * time.Second

// Runner runs a command string the way eval.ShellRunner expects: as if
// handed to `sh -c <cmd>`, returning captured standard output.
type Runner struct {
	// Shell is the interpreter binary Run invokes the command through.
	// Defaults to "sh" when empty.
	Shell string

	// Timeout bounds each Run call. Zero selects DefaultTimeout.
	Timeout time.Duration
}

// New builds a Runner with the default shell and timeout.
func New() *Runner {
	return &Runner{Shell: "sh", Timeout: DefaultTimeout}
}

// Run executes cmd through r.Shell and returns its captured stdout. Standard
// error is discarded, matching spec §6.3's "only stdout is captured". On
// timeout the whole process group started for cmd is killed so a command
// that forked children does not leak them.
func (r *Runner) Run(cmd string) ([]byte, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := exec.CommandContext(ctx, shell, "-c", cmd)
	setProcessGroup(c)
	c.Cancel = func() error {
		killProcessGroup(c)
		return nil
	}

	var stdout bytes.Buffer
	c.Stdout = &stdout

	if err := c.Start(); err != nil {
		return nil, err
	}
	err := c.Wait()
	if ctx.Err() == context.DeadlineExceeded {
		killProcessGroup(c)
		return stdout.Bytes(), ctx.Err()
	}
	return stdout.Bytes(), err
}

// DecodeLossyUTF8 decodes b as UTF-8, substituting the Unicode replacement
// character for any byte sequence that isn't valid UTF-8, rather than
// failing outright. Shell commands routinely emit locale-dependent or binary
// garbage on stdout; spec §6.3 asks for "best-effort text", not a hard error.
func DecodeLossyUTF8(b []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		// NewDecoder() on UTF8 never reports a failure our substitution
		// doesn't already fix, but keep the raw bytes if it ever does.
		return string(b)
	}
	return string(out)
}
