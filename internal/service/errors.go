package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrSiteDirIsNotSpecified = errors.New("site directory is not specified")
)
