package convert

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// MissingAccessionError is returned when a record has no accession.
func MissingAccessionError(entity, alias string) error {
	return &gn.Error{
		Code: errcode.ConvertMissingAccessionError,
		Msg:  "The %s record <em>%s</em> has no accession",
		Vars: []any{entity, alias},
		Err:  fmt.Errorf("%s record '%s' has no accession", entity, alias),
	}
}
