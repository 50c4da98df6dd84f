// Package assets embeds the default biome catalog and texture atlas.
package assets

import (
	"bytes"
	_ "embed"

	"meadowland/internal/biome"
	"meadowland/internal/tiles"
)

//go:embed biomes.json
var biomesJSON []byte

//go:embed textures.json
var texturesJSON []byte

// Catalog loads the embedded biome catalog.
func Catalog() (*biome.Catalog, error) {
	return biome.Load(bytes.NewReader(biomesJSON))
}

// Atlas loads the embedded texture atlas.
func Atlas() (*tiles.Atlas, error) {
	return tiles.LoadAtlas(bytes.NewReader(texturesJSON))
}

// LoadCatalog reads the catalog at path, or the embedded one when path is empty.
func LoadCatalog(path string) (*biome.Catalog, error) {
	if path == "" {
		return Catalog()
	}
	return biome.LoadFile(path)
}

// LoadAtlas reads the atlas at path, or the embedded one when path is empty.
func LoadAtlas(path string) (*tiles.Atlas, error) {
	if path == "" {
		return Atlas()
	}
	return tiles.LoadAtlasFile(path)
}
