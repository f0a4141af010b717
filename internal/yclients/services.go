package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	ServiceStaff struct {
		ID           int64 `json:"id"`
		SeanceLength int   `json:"seance_length"`
	}

	ServiceModel struct {
		ID         int64           `json:"id"`
		Title      string          `json:"title"`
		CategoryID int64           `json:"category_id"`
		PriceMin   float64         `json:"price_min"`
		PriceMax   float64         `json:"price_max"`
		Discount   float64         `json:"discount"`
		Comment    string          `json:"comment,omitempty"`
		Weight     int             `json:"weight,omitempty"`
		Active     int             `json:"active,omitempty"`
		APIID      string          `json:"api_id,omitempty"`
		Staff      []ServiceStaff  `json:"staff,omitempty"`
		ImageGroup json.RawMessage `json:"image_group,omitempty"`
	}

	ServicesQuery struct {
		StaffID    *int64 `url:"staff_id,omitempty"`
		CategoryID *int64 `url:"category_id,omitempty"`
	}

	ServicesListResponse struct {
		Success bool            `json:"success"`
		Data    []ServiceModel  `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	ServiceResponse struct {
		Success bool            `json:"success"`
		Data    ServiceModel    `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}
)

// ServicesService provides the company service catalogue.
type ServicesService struct {
	manager *Manager
}

func NewServicesService(m *Manager) *ServicesService {
	return &ServicesService{manager: m}
}

func (s *ServicesService) List(ctx context.Context, companyID int64, q ServicesQuery) (ServicesListResponse, error) {
	endpoint := fmt.Sprintf("company/%d/services", companyID)
	return execute[ServicesListResponse](ctx, s.manager, http.MethodGet, endpoint, request{query: q}, true)
}

func (s *ServicesService) Get(ctx context.Context, companyID, serviceID int64) (ServiceResponse, error) {
	endpoint := fmt.Sprintf("company/%d/services/%d", companyID, serviceID)
	return execute[ServiceResponse](ctx, s.manager, http.MethodGet, endpoint, request{}, true)
}
