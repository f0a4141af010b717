package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	NewsletterByIDBody struct {
		ClientIDs []int64 `json:"client_ids"`
		Text      string  `json:"text"`
	}

	NewsletterFilterQuery struct {
		Fullname string `url:"fullname,omitempty"`
		Phone    string `url:"phone,omitempty"`
		Email    string `url:"email,omitempty"`
		Card     string `url:"card,omitempty"`
	}

	NewsletterByFilterBody struct {
		Text string `json:"text"`
	}

	EmailByIDBody struct {
		ClientIDs []int64 `json:"client_ids"`
		Subject   string  `json:"subject"`
		Text      string  `json:"text"`
	}

	EmailByFilterBody struct {
		Subject string `json:"subject"`
		Text    string `json:"text"`
	}

	SMSSendBody struct {
		DestinationParams   []SMSDestination `json:"destination_params"`
		From                string           `json:"from"`
		Text                string           `json:"text"`
		Channel             string           `json:"channel"`
		DispatchType        string           `json:"dispatch_type"`
		DeliveryCallbackURL Optional[string] `json:"delivery_callback_url,omitzero"`
	}

	SMSDestination struct {
		ID    string `json:"id"`
		Phone string `json:"phone"`
	}

	DeliveryStatusItem struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	NewsletterResponse struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data,omitempty"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}
)

// NewsletterService sends SMS and email campaigns to clients.
type NewsletterService struct {
	manager *Manager
}

func NewNewsletterService(m *Manager) *NewsletterService {
	return &NewsletterService{manager: m}
}

func (s *NewsletterService) SMSByID(ctx context.Context, companyID int64, body NewsletterByIDBody) (NewsletterResponse, error) {
	endpoint := fmt.Sprintf("sms/clients/by_id/%d", companyID)
	return execute[NewsletterResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *NewsletterService) SMSByFilter(ctx context.Context, companyID int64, q NewsletterFilterQuery, body NewsletterByFilterBody) (NewsletterResponse, error) {
	endpoint := fmt.Sprintf("sms/clients/by_filter/%d", companyID)
	return execute[NewsletterResponse](ctx, s.manager, http.MethodPost, endpoint, request{query: q, body: body}, true)
}

func (s *NewsletterService) EmailByID(ctx context.Context, companyID int64, body EmailByIDBody) (NewsletterResponse, error) {
	endpoint := fmt.Sprintf("email/clients/by_id/%d", companyID)
	return execute[NewsletterResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *NewsletterService) EmailByFilter(ctx context.Context, companyID int64, q NewsletterFilterQuery, body EmailByFilterBody) (NewsletterResponse, error) {
	endpoint := fmt.Sprintf("email/clients/by_filter/%d", companyID)
	return execute[NewsletterResponse](ctx, s.manager, http.MethodPost, endpoint, request{query: q, body: body}, true)
}

func (s *NewsletterService) SendSMS(ctx context.Context, body SMSSendBody) (NewsletterResponse, error) {
	return execute[NewsletterResponse](ctx, s.manager, http.MethodPost, "sms/send", request{body: body}, true)
}

// DeliveryStatus reports delivery callbacks back to the API; the body is a
// bare JSON array.
func (s *NewsletterService) DeliveryStatus(ctx context.Context, statuses []DeliveryStatusItem) (NewsletterResponse, error) {
	return execute[NewsletterResponse](ctx, s.manager, http.MethodPost, "delivery/status", request{body: statuses}, true)
}
