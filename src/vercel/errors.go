// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package vercel

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrMissingToken is returned before any request is made when the
	// credentials carry no bearer token.
	ErrMissingToken = errors.New("missing Vercel API token")

	// ErrMissingDomainName is returned by [Client.AddProjectDomain] when the
	// payload has no "name" property.
	ErrMissingDomainName = errors.New("domainData must have a 'name' property")
)

// APIError is a non-2xx answer from the Vercel API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return e.Code
	default:
		return fmt.Sprintf("request returned non-2xx status, %d", e.StatusCode)
	}
}

// NotFound reports whether the upstream answered 404.
func (e *APIError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// errorResponse covers both shapes Vercel uses:
// {"error":{"code":"...","message":"..."}} and {"error":"...","message":"..."}.
type errorResponse struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
			apiErr.Message = fmt.Sprintf("%d %s: %s", status, http.StatusText(status), text)
		}
		return apiErr
	}

	var detail errorDetail
	if err := json.Unmarshal(resp.Error, &detail); err == nil {
		apiErr.Code, apiErr.Message = detail.Code, detail.Message
	} else {
		var code string
		if err := json.Unmarshal(resp.Error, &code); err == nil {
			apiErr.Code = code
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Message
	}

	return apiErr
}
