package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/purefunctor/pixels/internal/domain"
)

// RequestSpec is everything needed to build one authenticated API request.
type RequestSpec struct {
	Method string
	URL    string
	Query  url.Values

	// JSON, when non-nil, is marshaled as the request body.
	JSON any

	// Token is sent as a bearer Authorization header when non-empty.
	Token string
}

// BuildRequest builds an *http.Request from a RequestSpec.
func BuildRequest(ctx context.Context, spec RequestSpec) (*http.Request, error) {
	if strings.TrimSpace(spec.URL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidInput,
			Err:  domain.ErrInvalidInput,
		}
	}

	var body *bytes.Reader
	contentType := ""
	if spec.JSON != nil {
		payload, err := json.Marshal(spec.JSON)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "httpclient.build",
				Kind: domain.KindInvalidInput,
				Err:  err,
			}
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	} else {
		body = bytes.NewReader(nil)
	}

	target := spec.URL
	if len(spec.Query) > 0 {
		target = target + "?" + spec.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, target, body)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if spec.Token != "" {
		req.Header.Set("Authorization", "Bearer "+spec.Token)
	}

	return req, nil
}
