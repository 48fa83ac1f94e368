// Package iotaxonomy imports NCBI taxonomy lineages into the database.
// It is an impure I/O package that talks to NCBI E-utilities.
package iotaxonomy

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/srameta/pkg/config"
	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/parserpool"
	"github.com/gnames/srameta/pkg/schema"
	"golang.org/x/sync/singleflight"
)

// TaxonomyImporter resolves NCBI taxon ids into persisted taxa.
type TaxonomyImporter interface {
	importer.TaxonomyImporter

	// ClearCache removes lineages cached on disk.
	ClearCache() error
}

type taxonImporter struct {
	cfg    config.TaxonomyConfig
	client *http.Client
	repo   importer.TaxonomyRepository
	parser parserpool.Pool
	disk   *diskCache

	mu   sync.RWMutex
	taxa map[int]*schema.Taxonomy
	sf   singleflight.Group
}

// Option configures the taxonomy importer.
type Option func(*taxonImporter)

// OptHTTPClient sets the HTTP client used for NCBI requests.
func OptHTTPClient(c *http.Client) Option {
	return func(t *taxonImporter) {
		if c != nil {
			t.client = c
		}
	}
}

// OptCacheDir enables the on-disk lineage cache in the given directory.
func OptCacheDir(dir string) Option {
	return func(t *taxonImporter) {
		if dir == "" {
			return
		}
		disk, err := newDiskCache(dir)
		if err != nil {
			slog.Warn("Lineage cache is disabled", "dir", dir)
			return
		}
		t.disk = disk
	}
}

// New creates a taxonomy importer. Taxa are persisted by repo, canonical
// forms of their names are computed with the parser pool.
func New(
	cfg config.TaxonomyConfig,
	repo importer.TaxonomyRepository,
	parser parserpool.Pool,
	opts ...Option,
) TaxonomyImporter {
	res := &taxonImporter{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		repo:   repo,
		parser: parser,
		taxa:   make(map[int]*schema.Taxonomy),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// ImportTaxonomyTree returns a persisted taxon for the id. The whole
// lineage of the taxon is persisted first, from the root down. Each id is
// fetched at most once per importer, concurrent callers share the result.
func (t *taxonImporter) ImportTaxonomyTree(
	ctx context.Context,
	taxonID int,
) (*schema.Taxonomy, error) {
	if taxonID <= 0 {
		return nil, TaxonIDError(taxonID)
	}
	if res, ok := t.cached(taxonID); ok {
		return res, nil
	}

	v, err, _ := t.sf.Do(strconv.Itoa(taxonID), func() (any, error) {
		if res, ok := t.cached(taxonID); ok {
			return res, nil
		}
		return t.load(ctx, taxonID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schema.Taxonomy), nil
}

func (t *taxonImporter) ClearCache() error {
	if t.disk == nil {
		return nil
	}
	return t.disk.clean()
}

func (t *taxonImporter) cached(id int) (*schema.Taxonomy, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res, ok := t.taxa[id]
	return res, ok
}

func (t *taxonImporter) load(
	ctx context.Context,
	taxonID int,
) (*schema.Taxonomy, error) {
	var nodes []node
	if t.disk != nil {
		nodes = t.disk.get(taxonID)
	}
	if len(nodes) == 0 {
		var err error
		nodes, err = t.fetchLineage(ctx, taxonID)
		if err != nil {
			return nil, err
		}
		if t.disk != nil {
			t.disk.set(taxonID, nodes)
		}
	}

	code := nomCode(nodes)
	var res *schema.Taxonomy
	for _, v := range nodes {
		if tx, ok := t.cached(v.ID); ok {
			res = tx
			continue
		}

		tx := &schema.Taxonomy{
			ID:        v.ID,
			Name:      v.Name,
			Canonical: t.parser.Canonical(v.Name, code),
			Rank:      v.Rank,
			ParentID:  v.ParentID,
			Division:  v.Division,
		}
		tx, err := t.repo.FindOrSave(ctx, tx)
		if err != nil {
			return nil, err
		}
		t.store(v.ID, tx)
		res = tx
	}

	// merged ids resolve to the current taxon
	if res.ID != taxonID {
		slog.Debug("Taxonomy id is merged", "taxon-id", taxonID, "current-id", res.ID)
		t.store(taxonID, res)
	}
	return res, nil
}

func (t *taxonImporter) store(id int, tx *schema.Taxonomy) {
	t.mu.Lock()
	t.taxa[id] = tx
	t.mu.Unlock()
}

// nomCode picks botanical code for plants and fungi, zoological code
// for everything else.
func nomCode(nodes []node) nomcode.Code {
	botanical := slices.ContainsFunc(nodes, func(n node) bool {
		return n.Name == "Viridiplantae" || n.Name == "Fungi"
	})
	if botanical {
		return nomcode.Botanical
	}
	return nomcode.Zoological
}
