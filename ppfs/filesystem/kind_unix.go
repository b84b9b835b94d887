//go:build unix

package filesystem

import (
	"errors"
	"syscall"
)

func platformUnsupported(err error) bool {
	return errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.ENOSYS)
}
