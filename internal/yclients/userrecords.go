package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	UserAuthBody struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	UserAuthData struct {
		ID        int64  `json:"id,omitempty"`
		UserToken string `json:"user_token"`
		Name      string `json:"name,omitempty"`
		Phone     string `json:"phone,omitempty"`
		Login     string `json:"login,omitempty"`
		Email     string `json:"email,omitempty"`
	}

	UserAuthResponse struct {
		Success bool            `json:"success"`
		Data    UserAuthData    `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	UserRecordsResponse struct {
		Success bool            `json:"success"`
		Data    []RecordModel   `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}
)

// UserRecordsService works on behalf of an end user: auth and the records
// visible to that user.
type UserRecordsService struct {
	manager *Manager
}

func NewUserRecordsService(m *Manager) *UserRecordsService {
	return &UserRecordsService{manager: m}
}

// Auth exchanges user credentials for a user token. The call itself is made
// with the partner token only; the received token becomes the manager's user
// tier for subsequent requests.
func (s *UserRecordsService) Auth(ctx context.Context, body UserAuthBody) (UserAuthResponse, error) {
	resp, err := execute[UserAuthResponse](ctx, s.manager, http.MethodPost, "user/auth", request{body: body}, false)
	if err != nil {
		return resp, err
	}
	if resp.Data.UserToken != "" {
		s.manager.SetUserToken(resp.Data.UserToken)
	}
	return resp, nil
}

func (s *UserRecordsService) List(ctx context.Context, recordID int64, recordHash string) (UserRecordsResponse, error) {
	endpoint := fmt.Sprintf("user/records/%d/%s", recordID, recordHash)
	return execute[UserRecordsResponse](ctx, s.manager, http.MethodGet, endpoint, request{}, true)
}

func (s *UserRecordsService) Delete(ctx context.Context, recordID int64, recordHash string) error {
	endpoint := fmt.Sprintf("user/records/%d/%s", recordID, recordHash)
	_, err := execute[okResponse](ctx, s.manager, http.MethodDelete, endpoint, request{}, true)
	return err
}
