// Package assets loads the image files the window frontend draws with.
// Every file in a manifest is checked before anything is decoded, so a
// broken asset directory fails before the window opens.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"

	"github.com/vovakirdan/flappy-shark/internal/config"
)

// ErrMissingAsset is returned when a manifest file is absent or cannot be
// decoded as an image.
var ErrMissingAsset = errors.New("missing asset")

// Manifest names the files a profile needs, relative to the asset directory.
type Manifest struct {
	Actor      string
	Background string
	Particle   string   // Empty when the profile has no particles
	Obstacles  []string // One file per animation frame
}

// ManifestFor builds the manifest of a profile's asset configuration.
func ManifestFor(cfg config.AssetConfig) Manifest {
	return Manifest{
		Actor:      cfg.Actor,
		Background: cfg.Background,
		Particle:   cfg.Particle,
		Obstacles:  append([]string(nil), cfg.Obstacles...),
	}
}

// Files returns every file of the manifest in load order.
func (m Manifest) Files() []string {
	files := []string{m.Actor, m.Background}
	if m.Particle != "" {
		files = append(files, m.Particle)
	}
	return append(files, m.Obstacles...)
}

// Images holds the decoded manifest.
type Images struct {
	Actor      image.Image
	Background image.Image
	Particle   image.Image // Nil when the manifest has no particle
	Obstacles  []image.Image
}

// Load reads and decodes every file of m from fsys.
func Load(fsys fs.FS, m Manifest) (*Images, error) {
	if len(m.Obstacles) == 0 {
		return nil, fmt.Errorf("%w: no obstacle frames in manifest", ErrMissingAsset)
	}

	for _, name := range m.Files() {
		if name == "" {
			return nil, fmt.Errorf("%w: empty file name in manifest", ErrMissingAsset)
		}
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, name, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrMissingAsset, name)
		}
	}

	decoded := make(map[string]image.Image, len(m.Files()))
	for _, name := range m.Files() {
		if _, ok := decoded[name]; ok {
			continue
		}
		img, err := decode(fsys, name)
		if err != nil {
			return nil, err
		}
		decoded[name] = img
	}

	imgs := &Images{
		Actor:      decoded[m.Actor],
		Background: decoded[m.Background],
		Obstacles:  make([]image.Image, 0, len(m.Obstacles)),
	}
	if m.Particle != "" {
		imgs.Particle = decoded[m.Particle]
	}
	for _, name := range m.Obstacles {
		imgs.Obstacles = append(imgs.Obstacles, decoded[name])
	}
	return imgs, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to decode image: %v", ErrMissingAsset, name, err)
	}
	return img, nil
}
