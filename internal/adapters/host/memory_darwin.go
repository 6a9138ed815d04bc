//go:build darwin

package host

import (
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

func physicalMemory() (int64, error) {
	n, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, zerr.Wrap(err, "failed to query physical memory")
	}
	return int64(n), nil //nolint:gosec // installed memory fits in int64
}
