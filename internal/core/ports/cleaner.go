package ports

// Cleaner removes directory trees on a best-effort basis.
//
//go:generate mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// DeleteAll removes path and everything below it. Failures are not reported.
	DeleteAll(path string)
}
