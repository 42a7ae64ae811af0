package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure. A
// non-2xx status is returned as an APIError carrying the response body; a
// nil target discards the body after the status check.
func DecodeResponse(service string, resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := errors.NewAPIError(service, resp.StatusCode, string(body))
		if resp.Request != nil && resp.Request.URL != nil {
			apiErr.Endpoint = resp.Request.URL.Path
		}
		return apiErr
	}

	if target == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
