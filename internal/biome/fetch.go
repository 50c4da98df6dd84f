package biome

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// CatalogFile is the file name the loader looks for inside a fetched asset
// directory.
const CatalogFile = "biomes.json"

// Fetch downloads the asset tree at src into dst. src accepts anything
// go-getter understands: local paths, git::, https://, s3:: and archives.
func Fetch(ctx context.Context, src, dst string) error {
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working dir: %w", err)
	}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch %s: %w", src, err)
	}
	return nil
}

// FetchCatalog fetches src into dst and loads the catalog found there. dst
// may end up as a directory holding CatalogFile or as the file itself.
func FetchCatalog(ctx context.Context, src, dst string) (*Catalog, error) {
	if err := Fetch(ctx, src, dst); err != nil {
		return nil, err
	}
	path := dst
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		path = filepath.Join(dst, CatalogFile)
	}
	return LoadFile(path)
}
