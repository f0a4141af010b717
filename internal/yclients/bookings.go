package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	BookableService struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		CategoryID   int64   `json:"category_id"`
		PriceMin     float64 `json:"price_min"`
		PriceMax     float64 `json:"price_max"`
		Discount     float64 `json:"discount"`
		Comment      string  `json:"comment,omitempty"`
		Weight       int     `json:"weight,omitempty"`
		Active       int     `json:"active,omitempty"`
		SeanceLength int     `json:"seance_length,omitempty"`
	}

	BookableCategory struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		Weight int    `json:"weight,omitempty"`
	}

	BookableServicesData struct {
		Services []BookableService  `json:"services"`
		Category []BookableCategory `json:"category"`
	}

	BookableServicesResponse struct {
		Success bool                 `json:"success"`
		Data    BookableServicesData `json:"data"`
		Meta    json.RawMessage      `json:"meta,omitempty"`
	}

	BookableServicesQuery struct {
		StaffID    *int64  `url:"staff_id,omitempty"`
		Datetime   string  `url:"datetime,omitempty"`
		ServiceIDs []int64 `url:"service_ids,omitempty"`
	}

	BookableDatesData struct {
		BookingDays  map[string][]int `json:"booking_days"`
		BookingDates []string         `json:"booking_dates"`
		WorkingDays  map[string][]int `json:"working_days"`
		WorkingDates []string         `json:"working_dates"`
	}

	BookableDatesResponse struct {
		Success bool              `json:"success"`
		Data    BookableDatesData `json:"data"`
		Meta    json.RawMessage   `json:"meta,omitempty"`
	}

	BookableDatesQuery struct {
		ServiceIDs []int64 `url:"service_ids,omitempty"`
		StaffID    *int64  `url:"staff_id,omitempty"`
		Date       string  `url:"date,omitempty"`
	}

	Seance struct {
		Time         string `json:"time"`
		SeanceLength int    `json:"seance_length"`
		Datetime     string `json:"datetime"`
	}

	BookableTimesResponse struct {
		Success bool            `json:"success"`
		Data    []Seance        `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	BookableTimesQuery struct {
		ServiceIDs []int64 `url:"service_ids,omitempty"`
	}

	Appointment struct {
		ID           int                      `json:"id"`
		Services     []int64                  `json:"services"`
		StaffID      int64                    `json:"staff_id"`
		Datetime     string                   `json:"datetime"`
		CustomFields Optional[map[string]any] `json:"custom_fields,omitzero"`
	}

	BookRecordBody struct {
		Phone         string                   `json:"phone"`
		Fullname      string                   `json:"fullname"`
		Email         string                   `json:"email"`
		Appointments  []Appointment            `json:"appointments"`
		Code          Optional[string]         `json:"code,omitzero"`
		Comment       Optional[string]         `json:"comment,omitzero"`
		Type          Optional[string]         `json:"type,omitzero"`
		NotifyBySMS   Optional[int]            `json:"notify_by_sms,omitzero"`
		NotifyByEmail Optional[int]            `json:"notify_by_email,omitzero"`
		APIID         Optional[string]         `json:"api_id,omitzero"`
		CustomFields  Optional[map[string]any] `json:"custom_fields,omitzero"`
	}

	BookRecordData struct {
		ID         int    `json:"id"`
		RecordID   int64  `json:"record_id"`
		RecordHash string `json:"record_hash"`
	}

	BookRecordResponse struct {
		Success bool             `json:"success"`
		Data    []BookRecordData `json:"data"`
		Meta    json.RawMessage  `json:"meta,omitempty"`
	}

	CheckAppointmentsBody struct {
		Appointments []Appointment `json:"appointments"`
	}

	AppointmentError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	CheckAppointmentsResponse struct {
		Success bool               `json:"success"`
		Meta    json.RawMessage    `json:"meta,omitempty"`
		Message string             `json:"message,omitempty"`
		Errors  []AppointmentError `json:"errors,omitempty"`
	}

	RescheduleRecordBody struct {
		Datetime string           `json:"datetime"`
		Comment  Optional[string] `json:"comment,omitzero"`
	}

	RescheduleRecordResponse struct {
		Success bool            `json:"success"`
		Data    RecordModel     `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}
)

// OnlineBookingsService is the public booking surface: what can be booked,
// when, and the booking itself.
type OnlineBookingsService struct {
	manager *Manager
}

func NewOnlineBookingsService(m *Manager) *OnlineBookingsService {
	return &OnlineBookingsService{manager: m}
}

func (s *OnlineBookingsService) BookableServices(ctx context.Context, companyID int64, q BookableServicesQuery) (BookableServicesResponse, error) {
	endpoint := fmt.Sprintf("book_services/%d", companyID)
	return execute[BookableServicesResponse](ctx, s.manager, http.MethodGet, endpoint, request{query: q}, true)
}

func (s *OnlineBookingsService) BookableDates(ctx context.Context, companyID int64, q BookableDatesQuery) (BookableDatesResponse, error) {
	endpoint := fmt.Sprintf("book_dates/%d", companyID)
	return execute[BookableDatesResponse](ctx, s.manager, http.MethodGet, endpoint, request{query: q}, true)
}

func (s *OnlineBookingsService) BookableTimes(ctx context.Context, companyID, staffID int64, date string, q BookableTimesQuery) (BookableTimesResponse, error) {
	endpoint := fmt.Sprintf("book_times/%d/%d/%s", companyID, staffID, date)
	return execute[BookableTimesResponse](ctx, s.manager, http.MethodGet, endpoint, request{query: q}, true)
}

func (s *OnlineBookingsService) CheckAppointments(ctx context.Context, companyID int64, body CheckAppointmentsBody) (CheckAppointmentsResponse, error) {
	endpoint := fmt.Sprintf("book_record/%d/check", companyID)
	return execute[CheckAppointmentsResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *OnlineBookingsService) BookRecord(ctx context.Context, companyID int64, body BookRecordBody) (BookRecordResponse, error) {
	endpoint := fmt.Sprintf("book_record/%d", companyID)
	return execute[BookRecordResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *OnlineBookingsService) RescheduleRecord(ctx context.Context, companyID, recordID int64, body RescheduleRecordBody) (RescheduleRecordResponse, error) {
	endpoint := fmt.Sprintf("book_record/%d/%d", companyID, recordID)
	return execute[RescheduleRecordResponse](ctx, s.manager, http.MethodPut, endpoint, request{body: body}, true)
}
