// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package siteconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while locating, loading and resolving a site
// configuration. Callers should use [errors.Is] to match against them; the
// offending file path, when there is one, is available through
// [ConfigFileError].
var (
	// ErrNoConfigFileFound is returned when none of the candidate file names
	// exists in the site directory.
	ErrNoConfigFileFound = errors.New("no configuration file found")

	// ErrNoParentConfigFileFound is returned when a parent reference points
	// to a path that is not a regular file.
	ErrNoParentConfigFileFound = errors.New("no parent configuration file found")

	// ErrCyclicalConfigFile is returned when a parent reference points to a
	// file already visited in the current resolution chain.
	ErrCyclicalConfigFile = errors.New("parent configuration file includes one of its descendants")

	// ErrParse is returned when a file cannot be read as a YAML mapping.
	ErrParse = errors.New("error parsing configuration file")

	// ErrDisallowedType is returned when a file contains a value whose type
	// is outside the permitted set.
	ErrDisallowedType = errors.New("disallowed value type in configuration file")

	// ErrInvalidParentReference is returned when the parent reference is not
	// a string.
	ErrInvalidParentReference = errors.New("invalid parent configuration reference")

	// ErrParentChainTooDeep is returned when the chain of parents exceeds the
	// resolver's depth ceiling.
	ErrParentChainTooDeep = errors.New("parent configuration chain is too deep")
)

// ConfigFileError ties a resolution failure to the file it concerns.
type ConfigFileError struct {
	// Path is the absolute path of the offending file.
	Path string

	// Err is one of the package sentinels, possibly wrapping a lower level
	// cause.
	Err error
}

func (e *ConfigFileError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNoParentConfigFileFound):
		return fmt.Sprintf("there is no parent configuration file at %s", e.Path)
	case errors.Is(e.Err, ErrCyclicalConfigFile):
		return fmt.Sprintf("the parent configuration file at %s includes one of its descendants", e.Path)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ConfigFileError) Unwrap() error {
	return e.Err
}

func newConfigFileError(path string, err error) *ConfigFileError {
	return &ConfigFileError{Path: path, Err: err}
}
