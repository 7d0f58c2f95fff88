package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// DataDirEnv names a directory whose JSON files replace the embedded ones.
const DataDirEnv = "DUNGEONLE_DATA_DIR"

// Load reads and unmarshals a JSON file from the data directory named by
// DUNGEONLE_DATA_DIR, or from the embedded filesystem when it is unset.
func Load[T any](filename string) (T, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return LoadFS[T](os.DirFS(dir), filename)
	}
	return LoadFS[T](dataFS, filename)
}

// LoadFS reads and unmarshals a JSON file from fsys.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read data file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}
