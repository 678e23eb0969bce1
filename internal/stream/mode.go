package stream

import (
	"os"
	"strings"
)

// DefaultMode opens an existing resource for reading and writing.
const DefaultMode = "rw+"

var binaryFlags = strings.NewReplacer("b", "", "t", "")

// openFlags translates an fopen-style mode to os.OpenFile flags.
func openFlags(mode string) (int, bool) {
	m := binaryFlags.Replace(mode)
	if m == "" {
		return 0, false
	}
	var flag int
	switch m[0] {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case 'x':
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	case 'c':
		flag = os.O_WRONLY | os.O_CREATE
	default:
		return 0, false
	}
	if strings.Contains(m, "+") {
		flag = flag&^os.O_WRONLY | os.O_RDWR
	}
	return flag, true
}

func modeReadable(mode string) bool {
	return strings.ContainsAny(mode, "r+")
}

func modeWritable(mode string) bool {
	return strings.ContainsAny(mode, "waxc+")
}
