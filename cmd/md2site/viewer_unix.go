//go:build !windows

package main

import (
	"os/exec"
	"runtime"
)

// openerCommand builds the platform command that opens target in the
// default application.
func openerCommand(target string) *exec.Cmd {
	if runtime.GOOS == "darwin" {
		return exec.Command("open", target)
	}
	return exec.Command("xdg-open", target)
}
