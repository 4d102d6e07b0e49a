//go:build !linux && !darwin

package term

import (
	"io/fs"
	"os"
)

func isTerminalFd(fd uintptr) bool {
	info, err := os.NewFile(fd, "").Stat()
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeCharDevice != 0
}
