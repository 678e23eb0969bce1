//go:build !darwin && !linux
// +build !darwin,!linux

package stream

import "os"

// fileMode is unknown here; the caller falls back to the interfaces f
// implements.
func fileMode(f *os.File) string {
	return ""
}
