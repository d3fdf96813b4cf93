package level

import (
	"embed"
	"fmt"
	"os"
)

//go:embed levels/*.txt
var builtin embed.FS

// LoadDB loads the built-in levels, then overrides them from dir when non-empty
func LoadDB(dir string) (*DB, error) {
	db := NewDB()
	if err := db.ImportFS(builtin, "levels"); err != nil {
		return nil, fmt.Errorf("builtin levels: %w", err)
	}
	if dir != "" {
		if err := db.ImportFS(os.DirFS(dir), "."); err != nil {
			return nil, err
		}
	}
	return db, nil
}
