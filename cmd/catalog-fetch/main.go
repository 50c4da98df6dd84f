package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"meadowland/internal/app"
	"meadowland/internal/biome"
	"meadowland/internal/tiles"
)

func main() {
	var (
		src      = flag.String("src", "", "asset source (local path, git::, https://, s3:: or archive)")
		out      = flag.String("o", "./assets-fetched", "output dir path")
		textures = flag.String("textures", "textures.json", "texture atlas file name inside the fetched tree (empty skips the check)")
		level    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log, err := app.NewLogger(os.Stderr, *level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *src == "" {
		log.Error("source required")
		os.Exit(2)
	}
	if *out == "" {
		log.Error("output dir path required")
		os.Exit(2)
	}
	if err := os.RemoveAll(*out); err != nil {
		log.Error("clear output dir", "path", *out, "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("start downloading assets", "src", *src, "dst", *out)
	catalog, err := biome.FetchCatalog(ctx, *src, *out)
	if err != nil {
		log.Error("fetch catalog", "err", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "biomes", catalog.Len())

	if *textures != "" {
		if err := checkAtlas(log, catalog, filepath.Join(*out, *textures)); err != nil {
			log.Error("texture atlas", "err", err)
			os.Exit(1)
		}
	}
	log.Info("done downloading assets", "dst", *out)
}

func checkAtlas(log *slog.Logger, catalog *biome.Catalog, path string) error {
	if _, err := os.Stat(path); err != nil {
		log.Warn("no texture atlas in fetched tree", "path", path)
		return nil
	}
	atlas, err := tiles.LoadAtlasFile(path)
	if err != nil {
		return err
	}
	if missing := atlas.Missing(catalog); len(missing) > 0 {
		log.Warn("biomes without textures", "biomes", missing)
	}
	log.Info("texture atlas loaded", "textures", len(atlas.All()))
	return nil
}
