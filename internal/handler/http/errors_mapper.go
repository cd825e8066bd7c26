package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-site-config/internal/siteconfig"
)

var errorStatusMap = map[error]int{
	siteconfig.ErrNoConfigFileFound:       http.StatusNotFound,
	siteconfig.ErrNoParentConfigFileFound: http.StatusNotFound,
	siteconfig.ErrCyclicalConfigFile:      http.StatusConflict,
	siteconfig.ErrParse:                   http.StatusUnprocessableEntity,
	siteconfig.ErrDisallowedType:          http.StatusUnprocessableEntity,
	siteconfig.ErrInvalidParentReference:  http.StatusUnprocessableEntity,
	siteconfig.ErrParentChainTooDeep:      http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
