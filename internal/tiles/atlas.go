// Package tiles turns a classified grid into placed, textured tiles.
package tiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"meadowland/internal/biome"
)

// ErrInvalidAtlas is returned for malformed texture atlases.
var ErrInvalidAtlas = errors.New("invalid texture atlas")

// Texture is one weighted texture choice for a biome.
type Texture struct {
	Name   string `json:"name"`
	Weight uint32 `json:"weight"`
	// Color is the flat fill used by the tilemap painter, as "#rrggbb".
	Color string `json:"color"`
}

// RGBA parses Color. Malformed colors render as opaque magenta.
func (t Texture) RGBA() color.RGBA {
	missing := color.RGBA{R: 255, B: 255, A: 255}
	s := strings.TrimPrefix(strings.TrimSpace(t.Color), "#")
	if len(s) != 6 {
		return missing
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return missing
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Lookup maps a biome to the textures it may be drawn with.
type Lookup interface {
	TexturesFor(b biome.Biome) []Texture
}

// Atlas is a Lookup keyed by biome name.
type Atlas struct {
	byBiome map[string][]Texture
}

type atlasFile struct {
	Biomes map[string][]Texture `json:"biomes"`
}

// NewAtlas copies the per-biome texture lists.
func NewAtlas(byBiome map[string][]Texture) *Atlas {
	a := &Atlas{byBiome: make(map[string][]Texture, len(byBiome))}
	for name, textures := range byBiome {
		a.byBiome[name] = append([]Texture(nil), textures...)
	}
	return a
}

// LoadAtlas parses a {"biomes": {"<name>": [textures...]}} document.
func LoadAtlas(r io.Reader) (*Atlas, error) {
	var f atlasFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode texture atlas: %w", err)
	}
	for name, textures := range f.Biomes {
		for i, t := range textures {
			if strings.TrimSpace(t.Name) == "" {
				return nil, fmt.Errorf("%w: %s texture %d has no name", ErrInvalidAtlas, name, i)
			}
		}
	}
	return NewAtlas(f.Biomes), nil
}

// LoadAtlasFile reads an atlas from disk.
func LoadAtlasFile(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture atlas: %w", err)
	}
	defer f.Close()
	a, err := LoadAtlas(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// TexturesFor returns the textures registered for b.
func (a *Atlas) TexturesFor(b biome.Biome) []Texture {
	return a.byBiome[b.Name]
}

// Missing lists catalog biomes that have no texture with a positive weight.
func (a *Atlas) Missing(c *biome.Catalog) []string {
	var out []string
	for _, b := range c.Biomes() {
		usable := false
		for _, t := range a.byBiome[b.Name] {
			if t.Weight > 0 {
				usable = true
				break
			}
		}
		if !usable {
			out = append(out, b.Name)
		}
	}
	return out
}

// All returns every distinct texture name in the atlas, sorted.
func (a *Atlas) All() []string {
	set := mapset.New[string]()
	for _, textures := range a.byBiome {
		for _, t := range textures {
			set.Put(t.Name)
		}
	}
	names := make([]string, 0, set.Size())
	set.Each(func(name string) {
		names = append(names, name)
	})
	slices.Sort(names)
	return names
}
