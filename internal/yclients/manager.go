package yclients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"salonbot/pkg/config"
	"salonbot/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultAPIURL = "https://api.yclients.com/api/v1"

var successStatuses = map[int]struct{}{
	http.StatusOK:        {},
	http.StatusCreated:   {},
	http.StatusAccepted:  {},
	http.StatusNoContent: {},
}

type (
	ManagerParams struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
		LC     fx.Lifecycle
	}

	// Manager owns the HTTP transport shared by every resource service:
	// base URL, auth headers and the success/error contract.
	Manager struct {
		logger       logger.Logger
		client       *http.Client
		apiURL       string
		partnerToken string
		language     string

		tokenMu   sync.RWMutex
		userToken string
	}
)

func NewManager(p ManagerParams) *Manager {
	apiURL := p.Config.GetString("yclients.api_url")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	language := p.Config.GetString("yclients.language")
	if language == "" {
		language = "ru-RU"
	}

	m := &Manager{
		logger:       p.Logger,
		client:       &http.Client{Timeout: 30 * time.Second},
		apiURL:       strings.TrimRight(apiURL, "/"),
		partnerToken: p.Config.GetString("yclients.partner_token"),
		userToken:    p.Config.GetString("yclients.user_token"),
		language:     language,
	}

	p.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			m.client.CloseIdleConnections()
			return nil
		},
	})

	return m
}

// makeRequest performs one API call and returns the raw success body.
// Non-JSON success bodies are wrapped as {"text": <raw>} so callers always
// receive JSON. Every failure comes back as *APIError.
func (m *Manager) makeRequest(ctx context.Context, method, endpoint string, query url.Values, body any, useUserToken bool) (json.RawMessage, error) {
	reqURL := m.apiURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.yclients.v2+json")
	req.Header.Set("Accept-Language", m.language)
	req.Header.Set("Cache-Control", "no-cache")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", m.authorization(useUserToken))

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Error(ctx, "yclients request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, &APIError{Kind: ErrKindUnknown, Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: ErrKindUnknown, Message: err.Error(), cause: err}
	}

	if _, ok := successStatuses[resp.StatusCode]; ok {
		return normalizeBody(resp.Header.Get("Content-Type"), raw), nil
	}

	apiErr := &APIError{
		Kind:       kindForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    errorMessage(raw),
		Response:   raw,
	}
	m.logger.Error(ctx, "yclients returned error status",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.String("message", apiErr.Message),
	)
	return nil, apiErr
}

func (m *Manager) authorization(useUserToken bool) string {
	m.tokenMu.RLock()
	defer m.tokenMu.RUnlock()
	if useUserToken && m.userToken != "" {
		return fmt.Sprintf("Bearer %s, User %s", m.partnerToken, m.userToken)
	}
	return "Bearer " + m.partnerToken
}

// SetUserToken replaces the user token. Requests in flight keep the token
// they were built with. UserRecords.Auth calls this on success.
func (m *Manager) SetUserToken(token string) {
	m.tokenMu.Lock()
	defer m.tokenMu.Unlock()
	m.userToken = token
}

func normalizeBody(contentType string, raw []byte) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage(`{}`)
	}
	if !strings.Contains(contentType, "json") {
		wrapped, err := json.Marshal(map[string]string{"text": string(raw)})
		if err != nil {
			return json.RawMessage(`{}`)
		}
		return wrapped
	}
	if !json.Valid(raw) {
		return json.RawMessage(`{}`)
	}
	return raw
}

func errorMessage(raw []byte) string {
	var envelope struct {
		Meta struct {
			Message string `json:"message"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Meta.Message != "" {
		return envelope.Meta.Message
	}
	return "Unknown error"
}
