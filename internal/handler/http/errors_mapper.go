package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dandelion/internal/asset"
	"github.com/MKhiriev/go-dandelion/internal/config"
)

var errorStatusMap = map[error]int{
	asset.ErrAssetNotRegistered:   http.StatusNotFound,
	asset.ErrNoLocation:           http.StatusNotFound,
	asset.ErrWebjarAssetNotFound:  http.StatusNotFound,
	asset.ErrJarAssetNotFound:     http.StatusNotFound,
	asset.ErrWebjarAssetAmbiguous: http.StatusConflict,

	config.ErrUnknownOption: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
