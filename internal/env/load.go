package env

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the given file (e.g. ".env") and sets an environment variable for each
// KEY=VALUE line. Variables already present in the environment win. A missing file is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Parse returns the KEY=VALUE pairs of r without touching the environment.
// Comments, `export` prefixes and quoted values follow the usual .env rules.
func Parse(r io.Reader) (map[string]string, error) {
	return godotenv.Parse(r)
}

// String returns the variable's value, or def when it is unset or empty.
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Bool parses the variable with strconv.ParseBool; unset or unparsable values yield def.
func Bool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
