// Package level loads brick layouts and rebuilds the world for a level
package level

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/lixenwraith/brickbreaker/component"
)

var (
	// ErrLevelNotFound is returned when no layout exists for a level id
	ErrLevelNotFound = errors.New("level not found")

	// ErrNoLevels is returned when a database holds no layouts at all
	ErrNoLevels = errors.New("no levels loaded")
)

// Asset is one brick layout, row-major on a grid of parameter.LevelBricksGridSize columns
type Asset struct {
	ID     int
	Bricks []component.BrickKind
}

// BrickKindFor maps a level file character to a brick kind; unknown characters are air
func BrickKindFor(c rune) component.BrickKind {
	switch c {
	case '0':
		return component.BrickGrey
	case '1':
		return component.BrickGreen
	case '2':
		return component.BrickBlue
	case '3':
		return component.BrickRed
	case '4':
		return component.BrickPurple
	default:
		return component.BrickAir
	}
}

// ParseAsset reads a layout; all whitespace is ignored, every other character is one grid cell
func ParseAsset(id int, r io.Reader) (Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Asset{}, fmt.Errorf("read level %d: %w", id, err)
	}
	a := Asset{ID: id}
	for _, c := range string(data) {
		if unicode.IsSpace(c) {
			continue
		}
		a.Bricks = append(a.Bricks, BrickKindFor(c))
	}
	return a, nil
}

// DB holds level layouts by id
type DB struct {
	levels map[int]Asset
}

// NewDB creates an empty database
func NewDB() *DB {
	return &DB{levels: make(map[int]Asset)}
}

// Add stores or replaces a layout
func (db *DB) Add(a Asset) {
	db.levels[a.ID] = a
}

// ImportFS loads every "<id>.txt" file in dir of fsys, replacing layouts with the same id
// Files whose stem is not an integer are skipped
func (db *DB) ImportFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read level dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(entry.Name(), ".txt"))
		if err != nil {
			continue
		}
		f, err := fsys.Open(path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("open level %d: %w", id, err)
		}
		a, err := ParseAsset(id, f)
		f.Close()
		if err != nil {
			return err
		}
		db.Add(a)
	}
	return nil
}

// Level returns the layout for id
func (db *DB) Level(id int) (Asset, error) {
	a, ok := db.levels[id]
	if !ok {
		return Asset{}, fmt.Errorf("level %d: %w", id, ErrLevelNotFound)
	}
	return a, nil
}

// Resolve returns the layout for id, wrapping to the lowest id past the last level
func (db *DB) Resolve(id int) (Asset, error) {
	if a, err := db.Level(id); err == nil {
		return a, nil
	}
	ids := db.IDs()
	if len(ids) == 0 {
		return Asset{}, ErrNoLevels
	}
	if id > ids[len(ids)-1] {
		return db.levels[ids[0]], nil
	}
	return Asset{}, fmt.Errorf("level %d: %w", id, ErrLevelNotFound)
}

// IDs returns all level ids in ascending order
func (db *DB) IDs() []int {
	ids := make([]int, 0, len(db.levels))
	for id := range db.levels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
