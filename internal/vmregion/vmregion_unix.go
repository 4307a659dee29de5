//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package vmregion

import (
	"fmt"
	"syscall"
)

func mmap(size int) ([]byte, error) {
	b, err := syscall.Mmap(-1, 0, size, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_ANON|syscall.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("vmregion: mmap: %w", err)
	}
	return b, nil
}

func munmap(b []byte) error {
	return syscall.Munmap(b)
}
