//go:build darwin || linux
// +build darwin linux

package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

// fileMode reports the fopen-style mode f was opened with, read from the
// descriptor status flags.
func fileMode(f *os.File) string {
	fl, err := unix.FcntlInt(f.Fd(), unix.F_GETFL, 0)
	if err != nil {
		return ""
	}
	appending := fl&unix.O_APPEND != 0
	switch fl & unix.O_ACCMODE {
	case unix.O_RDONLY:
		return "r"
	case unix.O_WRONLY:
		if appending {
			return "a"
		}
		return "w"
	case unix.O_RDWR:
		if appending {
			return "a+"
		}
		return "r+"
	}
	return ""
}
