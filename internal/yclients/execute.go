package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// request is the envelope every operation hands to execute: an optional
// query-parameter struct (url tags, encoded by go-querystring) and an
// optional JSON body.
type request struct {
	query any
	body  any
}

// execute runs one API call and decodes the success body into T.
// A body that does not fit T is a *ValidationError, never a partial result.
func execute[T any](ctx context.Context, m *Manager, method, endpoint string, req request, useUserToken bool) (T, error) {
	var out T

	var values url.Values
	if req.query != nil {
		var err error
		values, err = query.Values(req.query)
		if err != nil {
			return out, fmt.Errorf("encode query for %s: %w", endpoint, err)
		}
	}

	raw, err := m.makeRequest(ctx, method, endpoint, values, req.body, useUserToken)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ValidationError{Endpoint: endpoint, Err: err}
	}
	return out, nil
}
