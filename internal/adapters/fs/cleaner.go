package fs

import (
	"os"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
)

var _ ports.Cleaner = (*Cleaner)(nil)

// Cleaner removes directory trees, reporting failures only as debug output.
type Cleaner struct {
	logger ports.Logger
}

// NewCleaner creates a new Cleaner.
func NewCleaner(logger ports.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// DeleteAll renames path out of the way and removes it recursively.
func (c *Cleaner) DeleteAll(path string) {
	target := path
	renamed := path + domain.DeletedSuffix
	if err := os.Rename(path, renamed); err == nil {
		target = renamed
	} else if !os.IsNotExist(err) {
		c.logger.Debug("could not rename " + path + ": " + err.Error())
	} else {
		return
	}

	if err := os.RemoveAll(target); err != nil {
		c.logger.Debug("could not delete " + target + ": " + err.Error())
	}
}
