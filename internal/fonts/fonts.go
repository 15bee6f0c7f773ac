// Package fonts finds an optional HUD font under assets/fonts. The game falls back to
// raylib's built-in font when none is installed.
package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// BaseDirs are searched in order, relative to the working directory. The second entry
// covers running a binary from inside cmd/.
var BaseDirs = []string{"assets/fonts", "../../assets/fonts"}

// Fallbacks are tried by Load when the requested family is missing.
var Fallbacks = []string{"Inter", "Roboto", "DejaVuSans"}

// Match is a font file found under a base directory.
type Match struct {
	Rel  string // slash-separated path below the base, e.g. "Inter/Inter-Regular.ttf"
	Full string
}

// ScanDir lists font files under dir as slash-separated relative paths. A missing dir
// yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func fold(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// FindFont returns the font file whose path contains search, ignoring case, spaces,
// dashes and underscores. Among several matches a "Regular" cut wins.
func FindFont(search string) (Match, error) {
	key := fold(search)
	if key == "" {
		return Match{}, os.ErrNotExist
	}
	var found []Match
	for _, base := range BaseDirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(fold(rel), key) {
				found = append(found, Match{Rel: rel, Full: filepath.Join(base, filepath.FromSlash(rel))})
			}
		}
	}
	if len(found) == 0 {
		return Match{}, os.ErrNotExist
	}
	if i := slices.IndexFunc(found, func(m Match) bool {
		return strings.Contains(strings.ToLower(m.Rel), "regular")
	}); i >= 0 {
		return found[i], nil
	}
	return found[0], nil
}

// Load loads the first available font among search and Fallbacks at size pixels.
// ok is false when none loads; the zero Font then selects the default font. Call it
// after the window exists.
func Load(search string, size int32) (font rl.Font, ok bool) {
	for _, name := range append([]string{search}, Fallbacks...) {
		m, err := FindFont(name)
		if err != nil {
			continue
		}
		font = rl.LoadFontEx(m.Full, size, nil)
		if font.Texture.ID == 0 {
			continue
		}
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		return font, true
	}
	return rl.Font{}, false
}
