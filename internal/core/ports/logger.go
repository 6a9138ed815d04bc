// Package ports defines the core interfaces for the driver.
package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	// Debug logs a message that is only shown in verbose mode.
	Debug(msg string)
	Error(err error)
	// SetVerbose toggles debug output.
	SetVerbose(enable bool)
}
