package manifest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// ManifestError is returned when a manifest is not a valid YAML list
// of studies and analyses.
func ManifestError(err error) error {
	msg := `Cannot read import manifest

<em>Expected format:</em>
  studies:
    - ERP001736
  analyses:
    - ERZ000001`

	return &gn.Error{
		Code: errcode.ImportManifestError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot decode manifest: %w", err),
	}
}
