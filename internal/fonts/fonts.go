// Package fonts resolves font faces from an ordered list of providers.
//
// Every chain ends in the library default face, so resolution never fails.
package fonts

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Platform font candidates, most preferred first.
var (
	BoldPaths = []string{
		"/System/Library/Fonts/Helvetica.ttc",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	}
	RegularPaths = []string{
		"/System/Library/Fonts/Helvetica.ttc",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
)

// ErrNoSize is returned by a File provider asked for a non-positive size.
var ErrNoSize = errors.New("font size must be greater than 0")

// Provider yields a face, or an error when it is unavailable.
type Provider interface {
	Face() (font.Face, error)
}

// File loads an OpenType/TrueType file (or the first font of a collection)
// at Points size.
type File struct {
	Path   string
	Points float64
}

func (f File) Face() (font.Face, error) {
	if f.Points <= 0 {
		return nil, ErrNoSize
	}
	parsed, err := load(f.Path)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    f.Points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s at %.0fpt: %w", f.Path, f.Points, err)
	}
	return face, nil
}

func (f File) String() string {
	return fmt.Sprintf("%s@%.0f", f.Path, f.Points)
}

// Default is the built-in bitmap face. It ignores point size and never fails.
type Default struct{}

func (Default) Face() (font.Face, error) {
	return basicfont.Face7x13, nil
}

func (Default) String() string { return "default" }

// Files returns one File provider per path, all at the same size.
func Files(paths []string, points float64) []Provider {
	out := make([]Provider, 0, len(paths))
	for _, p := range paths {
		out = append(out, File{Path: p, Points: points})
	}
	return out
}

// Resolve returns the face of the first provider that succeeds, falling back
// to Default when none do.
func Resolve(providers ...Provider) font.Face {
	for _, p := range providers {
		face, err := p.Face()
		if err == nil {
			log.WithField("font", name(p)).Debug("Resolved font")
			return face
		}
		log.WithError(err).WithField("font", name(p)).Debug("Font unavailable, trying next")
	}
	face, _ := Default{}.Face()
	return face
}

// Set holds the faces used by one banner render.
type Set struct {
	Title    font.Face
	Subtitle font.Face
	// Emoji is unused by the current layout and always aliases Subtitle.
	Emoji font.Face
}

// SetCandidate is one ranked option for a whole Set. It is taken only if
// both of its providers resolve.
type SetCandidate struct {
	Title    Provider
	Subtitle Provider
}

// ResolveSet returns faces from the first candidate whose providers all
// resolve, or default faces for every role.
func ResolveSet(candidates ...SetCandidate) Set {
	for _, c := range candidates {
		title, err := c.Title.Face()
		if err != nil {
			log.WithError(err).WithField("font", name(c.Title)).Debug("Font unavailable, trying next")
			continue
		}
		sub, err := c.Subtitle.Face()
		if err != nil {
			log.WithError(err).WithField("font", name(c.Subtitle)).Debug("Font unavailable, trying next")
			continue
		}
		return Set{Title: title, Subtitle: sub, Emoji: sub}
	}
	face, _ := Default{}.Face()
	return Set{Title: face, Subtitle: face, Emoji: face}
}

func name(p Provider) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
