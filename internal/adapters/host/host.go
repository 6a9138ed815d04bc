// Package host reports the resources of the machine the driver runs on.
package host

import (
	"runtime"

	"go.trai.ch/nativeimage/internal/core/ports"
)

var _ ports.Host = (*Host)(nil)

// Host implements ports.Host for the running process.
type Host struct{}

// New creates a new Host.
func New() *Host {
	return &Host{}
}

// PhysicalMemory returns the installed memory in bytes.
func (h *Host) PhysicalMemory() (int64, error) {
	return physicalMemory()
}

// NumCPU returns the number of usable processors.
func (h *Host) NumCPU() int {
	return runtime.NumCPU()
}

// Platform returns the native library directory name, e.g. "linux-amd64".
func (h *Host) Platform() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}
