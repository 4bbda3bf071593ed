package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv populates the process environment from paths unless NODE_ENV is
// "production". Variables already present in the environment are kept.
//
// A missing file is not an error; loaded reports whether any file was read.
func loadDotEnv(paths ...string) (loaded bool, err error) {
	if Environment(os.Getenv("NODE_ENV")).IsProduction() {
		return false, nil
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("error loading %s: %w", path, err)
		}
		loaded = true
	}

	return loaded, nil
}
