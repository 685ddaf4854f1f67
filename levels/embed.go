package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is where Load looks for on-disk overrides before the embedded copies.
var Dir = "levels"

var ErrUnknownLevel = errors.New("levels: unknown level")

// Load reads a level by name, preferring Dir/<name>.yaml on disk.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	if data, err := os.ReadFile(filepath.Join(Dir, clean+".yaml")); err == nil {
		return Parse(clean, data)
	}
	data, err := fs.ReadFile(LevelsFS, clean+".yaml")
	if err != nil {
		if hint := Suggest(clean, Names()); hint != "" {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownLevel, clean, hint)
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, clean)
	}
	return Parse(clean, data)
}

// LoadFile parses a level file at an explicit path.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(cleanLevelName(filepath.Base(path)), data)
}

// Names lists the embedded levels in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Suggest returns the closest known name within a small edit distance.
func Suggest(name string, names []string) string {
	best := ""
	bestDist := 0
	for _, n := range names {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(n))
		if best == "" || d < bestDist {
			best, bestDist = n, d
		}
	}
	if best == "" || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	s = strings.TrimSuffix(s, ".yaml")
	return strings.TrimSuffix(s, ".yml")
}
