//go:build windows

package main

import "os/exec"

// openerCommand builds the platform command that opens target in the
// default application. The empty string is the window title slot of the
// start builtin; without it a quoted path would be taken as the title.
func openerCommand(target string) *exec.Cmd {
	return exec.Command("cmd", "/c", "start", "", target)
}
