package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	JournalDatesQuery struct {
		StaffID *int64 `url:"staff_id,omitempty"`
	}

	JournalDatesResponse struct {
		Success bool            `json:"success"`
		Data    []string        `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	JournalSeance struct {
		Time   string `json:"time"`
		IsFree bool   `json:"is_free"`
	}

	JournalSeancesResponse struct {
		Success bool            `json:"success"`
		Data    []JournalSeance `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}
)

// JournalService exposes the appointment journal grid.
type JournalService struct {
	manager *Manager
}

func NewJournalService(m *Manager) *JournalService {
	return &JournalService{manager: m}
}

func (s *JournalService) Dates(ctx context.Context, companyID int64, date string, q JournalDatesQuery) (JournalDatesResponse, error) {
	endpoint := fmt.Sprintf("timetable/dates/%d/%s", companyID, date)
	return execute[JournalDatesResponse](ctx, s.manager, http.MethodPost, endpoint, request{query: q}, true)
}

func (s *JournalService) Seances(ctx context.Context, companyID, staffID int64, date string) (JournalSeancesResponse, error) {
	endpoint := fmt.Sprintf("timetable/seances/%d/%d/%s", companyID, staffID, date)
	return execute[JournalSeancesResponse](ctx, s.manager, http.MethodPost, endpoint, request{}, true)
}
