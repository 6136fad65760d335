// Package assets lists the generated site images and writes them to disk.
package assets

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	imagepkg "github.com/youruser/siteassets/internal/image"
	"github.com/youruser/siteassets/internal/util"
)

// Kind groups artifacts for listing.
type Kind string

const (
	KindIcon   Kind = "icon"
	KindBanner Kind = "banner"
	KindQR     Kind = "qr"
)

// Artifact is one output file.
type Artifact struct {
	Name  string
	Kind  Kind
	Write func(io.Writer) error
}

// Result describes a written artifact.
type Result struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// QRSize is the edge length of the site QR code.
const QRSize = 256

// IconSizes maps each PNG icon file to its pixel size.
var IconSizes = []struct {
	Name string
	Size int
}{
	{"favicon-16x16.png", 16},
	{"favicon-32x32.png", 32},
	{"apple-touch-icon.png", 180},
	{"android-chrome-192x192.png", 192},
	{"android-chrome-512x512.png", 512},
}

// FaviconSize is the icon stored in favicon.ico.
const FaviconSize = 32

// Manifest returns every artifact in output order.
func Manifest(siteURL string) []Artifact {
	var out []Artifact
	for _, ic := range IconSizes {
		size := ic.Size
		out = append(out, Artifact{
			Name: ic.Name,
			Kind: KindIcon,
			Write: func(w io.Writer) error {
				return imagepkg.EncodePNG(w, imagepkg.RenderIcon(size).Image())
			},
		})
	}
	out = append(out,
		Artifact{Name: "favicon.ico", Kind: KindIcon, Write: writeFavicon},
		Artifact{
			Name: "og-image.png",
			Kind: KindBanner,
			Write: func(w io.Writer) error {
				return imagepkg.EncodePNG(w, imagepkg.RenderBanner().Image())
			},
		},
		Artifact{
			Name: "site-qr.png",
			Kind: KindQR,
			Write: func(w io.Writer) error {
				b, err := imagepkg.GenerateQRPNG(siteURL, QRSize)
				if err != nil {
					return err
				}
				_, err = w.Write(b)
				return err
			},
		},
	)
	return out
}

func writeFavicon(w io.Writer) error {
	return imagepkg.EncodeICO(w, imagepkg.RenderIcon(FaviconSize).Image())
}

// Generate renders every artifact into dir using up to workers goroutines
// (0 means unbounded). Results are in artifact order. The first failure
// stops the outstanding work and is returned.
func Generate(ctx context.Context, dir string, artifacts []Artifact, workers int) ([]Result, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	results := make([]Result, len(artifacts))
	for i, a := range artifacts {
		i, a := i, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, a.Name)
			n, err := util.WriteFileAtomic(path, a.Write)
			if err != nil {
				return fmt.Errorf("write %s: %w", a.Name, err)
			}
			results[i] = Result{Name: a.Name, Path: path, Bytes: n}
			log.WithFields(log.Fields{
				"artifact": a.Name,
				"path":     path,
				"bytes":    n,
			}).Info("Generated asset")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
