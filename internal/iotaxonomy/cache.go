package iotaxonomy

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
)

// diskCache keeps downloaded lineages between import runs, so repeated
// imports do not hit NCBI for known taxa. Lineages are GOB encoded, one
// file per requested taxon id.
type diskCache struct {
	dir string
	enc gnfmt.GNgob
}

func newDiskCache(dir string) (*diskCache, error) {
	err := gnsys.MakeDir(dir)
	if err != nil {
		slog.Error("Cannot create cache directory", "error", err, "dir", dir)
		return nil, err
	}
	return &diskCache{dir: dir}, nil
}

func (c *diskCache) path(id int) string {
	return filepath.Join(c.dir, strconv.Itoa(id)+".gob")
}

// get returns nil if the lineage is not cached or cannot be read.
func (c *diskCache) get(id int) []node {
	bs, err := os.ReadFile(c.path(id))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Cannot read cached lineage", "error", err, "taxon-id", id)
		}
		return nil
	}

	var res []node
	if err = c.enc.Decode(bs, &res); err != nil {
		slog.Warn("Cannot decode cached lineage", "error", err, "taxon-id", id)
		return nil
	}
	return res
}

func (c *diskCache) set(id int, nodes []node) {
	bs, err := c.enc.Encode(nodes)
	if err != nil {
		slog.Warn("Cannot encode lineage", "error", err, "taxon-id", id)
		return
	}
	if err = os.WriteFile(c.path(id), bs, 0644); err != nil {
		slog.Warn("Cannot cache lineage", "error", err, "taxon-id", id)
	}
}

// clean removes all cached lineages.
func (c *diskCache) clean() error {
	return gnsys.CleanDir(c.dir)
}
