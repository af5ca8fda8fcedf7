package utils

import (
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HeaderRequestID carries the correlation id of an outbound request.
const HeaderRequestID = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and logs
// every completed or failed request at debug level.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("http://localhost:8000/whatsapp/templates/42/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with retries disabled.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. A nil log disables logging.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	if log == nil {
		log = logger.Nop()
	}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time().Round(time.Millisecond)).
			Msg("backend request finished")
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		log.Debug().
			Err(err).
			Str("request_id", req.Header.Get(HeaderRequestID)).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("backend request failed")
	})

	return &HTTPClient{Client: client}
}
