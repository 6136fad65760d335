package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font/opentype"
)

// Parsed fonts are safe for concurrent use, so one copy per path is shared
// by every render in the process. Faces are not, and are built per call.
var parsedFonts = cache.New(cache.NoExpiration, 0)

type entry struct {
	font *opentype.Font
	err  error
}

// load returns the parsed font at path. Misses are cached as well, so a
// missing platform font is only looked up once.
func load(path string) (*opentype.Font, error) {
	if v, ok := parsedFonts.Get(path); ok {
		e := v.(entry)
		return e.font, e.err
	}
	f, err := parse(path)
	parsedFonts.Set(path, entry{font: f, err: err}, cache.NoExpiration)
	return f, err
}

func parse(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse collection %s: %w", path, err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

// ResetCache drops every cached font. Tests use it after swapping files.
func ResetCache() {
	parsedFonts.Flush()
}
