package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}
}

// decodeJSON decodes a 2xx response body into v. An empty body (e.g. 204 No
// Content) leaves v zero and is not an error; callers check the fields they
// need, e.g. SendResult.MessageID reports ok=false.
func decodeJSON(resp *resty.Response, op string, v any) error {
	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
