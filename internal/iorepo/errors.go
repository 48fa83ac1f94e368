package iorepo

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// FindOrSaveError is returned when an entity cannot be found or stored.
func FindOrSaveError(entity, key string, err error) error {
	msg := "Cannot save %s <em>%s</em>"
	vars := []any{entity, key}

	return &gn.Error{
		Code: errcode.RepoFindOrSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("find or save %s %s: %w", entity, key, err),
	}
}

// SaveError is returned when an analysis cannot be stored.
func SaveError(entity, key string, err error) error {
	msg := "Cannot save %s <em>%s</em>"
	vars := []any{entity, key}

	return &gn.Error{
		Code: errcode.RepoSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("save %s %s: %w", entity, key, err),
	}
}
