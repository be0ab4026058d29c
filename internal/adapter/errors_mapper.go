// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage renders a server error body. JSON error bodies are flattened
// to "message (field: reason, ...)"; anything else is returned trimmed.
func errorMessage(raw []byte) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return strings.TrimSpace(string(raw))
	}

	if len(body.Fields) == 0 {
		return body.Error
	}

	fields := make([]string, 0, len(body.Fields))
	for name, reason := range body.Fields {
		fields = append(fields, name+": "+reason)
	}
	sort.Strings(fields)

	return fmt.Sprintf("%s (%s)", body.Error, strings.Join(fields, ", "))
}
