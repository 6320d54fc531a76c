//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package osutils

func isTerminal(fd uintptr) bool {
	return false
}
