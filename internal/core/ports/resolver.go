package ports

// PathResolver defines the filesystem queries of the driver.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Canonicalize resolves path against base into an absolute, symlink free path.
	// A trailing "*" wildcard is kept and requires its parent to be a directory.
	Canonicalize(base, path string) (string, error)
	// Jars lists the jar files directly inside dir in lexical order.
	// A missing directory yields no entries.
	Jars(dir string) ([]string, error)
	// IsRegularFile reports whether path is an existing regular file.
	IsRegularFile(path string) bool
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
	// IsExecutable reports whether path is a regular file with an execute bit set.
	IsExecutable(path string) bool
}
