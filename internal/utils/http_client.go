package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the remote-daemon adapter can use the
// resty request API directly while the client stays open for
// application-specific extension.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own configuration
// and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
