package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/service"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", service.ErrInvalidConfiguration, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", service.ErrInsufficientDictionary, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", dictionary.ErrDictionaryUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
