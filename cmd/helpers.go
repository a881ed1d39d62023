package cmd

import (
	"path/filepath"

	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/errors"
	"github.com/praxis-engineering/retrofit/internal/system"
)

// resolveTarget turns the --target flag into an absolute directory path.
func resolveTarget() (string, error) {
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return "", errors.ConfigError("invalid target directory", err)
	}

	fs := system.DefaultFS()
	if !fs.IsDir(abs) {
		return "", errors.New(errors.ExitConfigError, "target is not a directory: "+abs)
	}
	return abs, nil
}

// loadRecord returns the install record from a prior run, or nil when the
// target has never been installed into.
func loadRecord(target string) *config.InstallRecord {
	paths := config.NewPaths(target)
	rec, err := config.LoadRecord(system.DefaultFS(), paths.Record())
	if err != nil {
		return nil
	}
	return rec
}
