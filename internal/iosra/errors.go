package iosra

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// MissingStudyRefError is returned for analyses that do not reference
// a study.
func MissingStudyRefError(analysis string) error {
	msg := "Analysis <em>%s</em> has no STUDY_REF"
	vars := []any{analysis}

	return &gn.Error{
		Code: errcode.ImportMissingStudyRefError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("analysis %s has no study reference", analysis),
	}
}
