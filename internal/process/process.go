// Package process controls the lifetime of external converter processes.
//
// Converters such as calibre's ebook-convert fork helpers; killing only the
// direct child on cancellation would leave them running. Commands prepared
// with Isolate run in their own process group and the whole group is killed
// when the command's context is done.
package process

import "os/exec"

// Isolate places cmd in its own process group and makes context
// cancellation kill the whole group. cmd must come from exec.CommandContext.
func Isolate(cmd *exec.Cmd) {
	setGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillGroup(cmd.Process.Pid)
		return nil
	}
}
