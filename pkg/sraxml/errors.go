package sraxml

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// ParseError is returned when XML of a record is malformed.
func ParseError(tag, id string, err error) error {
	return &gn.Error{
		Code: errcode.XMLParseError,
		Msg:  "Cannot parse %s XML for <em>%s</em>",
		Vars: []any{tag, id},
		Err:  fmt.Errorf("cannot parse %s XML for %s: %w", tag, id, err),
	}
}

// RecordNotFoundError is returned when XML does not contain an element
// of the expected type.
func RecordNotFoundError(tag, id string) error {
	return &gn.Error{
		Code: errcode.XMLRecordNotFoundError,
		Msg:  "No %s element in XML for <em>%s</em>",
		Vars: []any{tag, id},
		Err:  fmt.Errorf("no %s element in XML for %s", tag, id),
	}
}

// AmbiguousRecordError is returned when XML contains several elements
// and none of them has the expected accession.
func AmbiguousRecordError(tag, id string, num int) error {
	return &gn.Error{
		Code: errcode.XMLAmbiguousRecordError,
		Msg:  "Found %d %s elements, none of them is <em>%s</em>",
		Vars: []any{num, tag, id},
		Err: fmt.Errorf("found %d %s elements, none has accession %s",
			num, tag, id),
	}
}
