package main

import (
	"meadowland/assets"
	"meadowland/internal/app"
	"meadowland/internal/biome"
	"meadowland/internal/tiles"
)

func loader(cfg *app.Config) app.Loader {
	return func() (*biome.Catalog, *tiles.Atlas, error) {
		catalog, err := assets.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, nil, err
		}
		atlas, err := assets.LoadAtlas(cfg.Textures)
		if err != nil {
			return nil, nil, err
		}
		return catalog, atlas, nil
	}
}
