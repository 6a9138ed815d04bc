package ports

// Host defines the queries about the machine the driver runs on.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// PhysicalMemory returns the installed memory in bytes.
	PhysicalMemory() (int64, error)
	// NumCPU returns the number of usable processors.
	NumCPU() int
	// Platform returns the os-arch pair used to select native libraries, e.g. "linux-amd64".
	Platform() string
}
