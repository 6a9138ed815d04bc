//go:build linux

package host

import (
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

func physicalMemory() (int64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, zerr.Wrap(err, "failed to query physical memory")
	}
	return int64(uint64(info.Totalram) * uint64(info.Unit)), nil //nolint:gosec // installed memory fits in int64
}
