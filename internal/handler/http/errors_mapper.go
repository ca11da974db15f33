package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/random"
	"github.com/MKhiriev/go-xkpasswd/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidConfiguration:   http.StatusBadRequest,
	service.ErrInsufficientDictionary: http.StatusUnprocessableEntity,

	dictionary.ErrDictionaryUnavailable: http.StatusServiceUnavailable,

	random.ErrInvalidRange: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
