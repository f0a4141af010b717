package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	CompanyModel struct {
		ID      int64  `json:"id"`
		Title   string `json:"title"`
		Address string `json:"address,omitempty"`
		Phone   string `json:"phone,omitempty"`
	}

	StaffModel struct {
		ID             int64  `json:"id"`
		Name           string `json:"name"`
		Specialization string `json:"specialization,omitempty"`
		Avatar         string `json:"avatar,omitempty"`
	}

	RecordService struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		Cost         float64 `json:"cost"`
		PriceMin     float64 `json:"price_min,omitempty"`
		PriceMax     float64 `json:"price_max,omitempty"`
		Discount     float64 `json:"discount,omitempty"`
		Amount       int     `json:"amount,omitempty"`
		SeanceLength int     `json:"seance_length,omitempty"`
	}

	// RecordModel is a salon appointment as records endpoints return it.
	RecordModel struct {
		ID           int64           `json:"id"`
		CompanyID    int64           `json:"company_id,omitempty"`
		StaffID      int64           `json:"staff_id"`
		Date         string          `json:"date,omitempty"`
		Datetime     string          `json:"datetime,omitempty"`
		SeanceLength int             `json:"seance_length,omitempty"`
		Comment      string          `json:"comment,omitempty"`
		Deleted      bool            `json:"deleted,omitempty"`
		Attendance   int             `json:"attendance,omitempty"`
		Services     []RecordService `json:"services,omitempty"`
		Client       *ClientModel    `json:"client,omitempty"`
		Staff        *StaffModel     `json:"staff,omitempty"`
		Company      *CompanyModel   `json:"company,omitempty"`
	}

	RecordsListQuery struct {
		StaffID   *int64 `url:"staff_id,omitempty"`
		ClientID  *int64 `url:"client_id,omitempty"`
		StartDate string `url:"start_date,omitempty"`
		EndDate   string `url:"end_date,omitempty"`
		Page      *int   `url:"page,omitempty"`
		Count     *int   `url:"count,omitempty"`
	}

	RecordsListResponse struct {
		Success bool            `json:"success"`
		Data    []RecordModel   `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	RecordResponse struct {
		Success bool            `json:"success"`
		Data    RecordModel     `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	CreateRecordClient struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email,omitempty"`
	}

	CreateRecordBody struct {
		StaffID      int64              `json:"staff_id"`
		Services     []int64            `json:"services"`
		Client       CreateRecordClient `json:"client"`
		Datetime     string             `json:"datetime"`
		SeanceLength int                `json:"seance_length"`
		SendSMS      Optional[bool]     `json:"send_sms,omitzero"`
		Comment      Optional[string]   `json:"comment,omitzero"`
		Attendance   Optional[int]      `json:"attendance,omitzero"`
	}

	// UpdateRecordBody is a partial update: only set fields travel.
	UpdateRecordBody struct {
		StaffID      Optional[int64]              `json:"staff_id,omitzero"`
		Services     Optional[[]int64]            `json:"services,omitzero"`
		Client       Optional[CreateRecordClient] `json:"client,omitzero"`
		Datetime     Optional[string]             `json:"datetime,omitzero"`
		SeanceLength Optional[int]                `json:"seance_length,omitzero"`
		Comment      Optional[string]             `json:"comment,omitzero"`
		Attendance   Optional[int]                `json:"attendance,omitzero"`
	}

	PartnerRecordsQuery struct {
		Page  *int `url:"page,omitempty"`
		Count *int `url:"count,omitempty"`
	}
)

// RecordsService is the staff-side view of appointments.
type RecordsService struct {
	manager *Manager
}

func NewRecordsService(m *Manager) *RecordsService {
	return &RecordsService{manager: m}
}

func (s *RecordsService) List(ctx context.Context, companyID int64, q RecordsListQuery) (RecordsListResponse, error) {
	endpoint := fmt.Sprintf("records/%d", companyID)
	return execute[RecordsListResponse](ctx, s.manager, http.MethodPost, endpoint, request{query: q}, true)
}

func (s *RecordsService) Create(ctx context.Context, companyID int64, body CreateRecordBody) (RecordResponse, error) {
	endpoint := fmt.Sprintf("records/%d", companyID)
	return execute[RecordResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *RecordsService) PartnerRecords(ctx context.Context, q PartnerRecordsQuery) (RecordsListResponse, error) {
	return execute[RecordsListResponse](ctx, s.manager, http.MethodPost, "records/partner", request{query: q}, true)
}

func (s *RecordsService) Get(ctx context.Context, companyID, recordID int64) (RecordResponse, error) {
	endpoint := fmt.Sprintf("record/%d/%d", companyID, recordID)
	q := struct {
		RecordID int64 `url:"record_id"`
	}{recordID}
	return execute[RecordResponse](ctx, s.manager, http.MethodPost, endpoint, request{query: q}, true)
}

func (s *RecordsService) Update(ctx context.Context, companyID, recordID int64, body UpdateRecordBody) (RecordResponse, error) {
	endpoint := fmt.Sprintf("record/%d/%d", companyID, recordID)
	return execute[RecordResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *RecordsService) Delete(ctx context.Context, companyID, recordID int64) error {
	endpoint := fmt.Sprintf("record/%d/%d", companyID, recordID)
	_, err := execute[okResponse](ctx, s.manager, http.MethodPost, endpoint, request{}, true)
	return err
}
