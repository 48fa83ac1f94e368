package iotaxonomy

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// TaxonIDError is returned for taxon ids that cannot exist in NCBI.
func TaxonIDError(id int) error {
	msg := "Invalid taxonomy id <em>%d</em>"
	vars := []any{id}

	return &gn.Error{
		Code: errcode.TaxonomyIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid taxonomy id %d", id),
	}
}

// FetchError is returned when taxonomy service cannot be reached or
// answers with an unexpected status.
func FetchError(id int, err error) error {
	msg := `Cannot fetch taxonomy id <em>%d</em>

<em>Possible causes:</em>
  - Network is not available
  - NCBI limits requests without an API key

<em>How to fix:</em>
  1. Check 'taxonomy' section of ~/.config/srameta/config.yaml
  2. Set SRAMETA_TAXONOMY_API_KEY`
	vars := []any{id}

	return &gn.Error{
		Code: errcode.TaxonomyFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("fetch taxonomy %d: %w", id, err),
	}
}

// DecodeError is returned when taxonomy XML cannot be decoded.
func DecodeError(id int, err error) error {
	msg := "Cannot decode taxonomy record <em>%d</em>"
	vars := []any{id}

	return &gn.Error{
		Code: errcode.TaxonomyDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("decode taxonomy %d: %w", id, err),
	}
}

// NotFoundError is returned when taxonomy service knows nothing about
// the id.
func NotFoundError(id int) error {
	msg := "Taxonomy id <em>%d</em> is not found"
	vars := []any{id}

	return &gn.Error{
		Code: errcode.TaxonomyNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("taxonomy %d not found", id),
	}
}
