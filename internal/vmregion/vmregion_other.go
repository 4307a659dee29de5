//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package vmregion

import "errors"

// errUnsupported is returned on platforms with no anonymous-mmap syscall
// wired up here; callers get a runtime error rather than a build failure.
var errUnsupported = errors.New("vmregion: anonymous mmap not supported on this platform")

func mmap(size int) ([]byte, error) {
	return nil, errUnsupported
}

func munmap(b []byte) error {
	return errUnsupported
}
