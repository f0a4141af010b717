package yclients

import (
	"context"
	"fmt"
	"net/http"
)

type (
	ValidatePhoneData struct {
		IsValid bool `json:"is_valid"`
	}

	ValidatePhoneResponse struct {
		Success bool              `json:"success"`
		Data    ValidatePhoneData `json:"data"`
	}
)

// ValidationService checks phone numbers against the API validator.
type ValidationService struct {
	manager *Manager
}

func NewValidationService(m *Manager) *ValidationService {
	return &ValidationService{manager: m}
}

func (s *ValidationService) ValidatePhone(ctx context.Context, phone string) (ValidatePhoneResponse, error) {
	endpoint := fmt.Sprintf("validation/validate_phone/%s", phone)
	return execute[ValidatePhoneResponse](ctx, s.manager, http.MethodGet, endpoint, request{}, true)
}
