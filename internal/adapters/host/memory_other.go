//go:build !linux && !darwin

package host

import "go.trai.ch/zerr"

func physicalMemory() (int64, error) {
	return 0, zerr.New("physical memory query is not supported on this platform")
}
