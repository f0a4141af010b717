package yclients

import (
	"context"
	"fmt"
	"net/http"
)

type (
	TimeSlot struct {
		From string `json:"from"`
		To   string `json:"to"`
	}

	StaffScheduleData struct {
		StaffID       int64      `json:"staff_id"`
		Date          string     `json:"date"`
		Slots         []TimeSlot `json:"slots"`
		BusyIntervals []TimeSlot `json:"busy_intervals,omitempty"`
		OffDayType    *int       `json:"off_day_type,omitempty"`
	}

	StaffScheduleMeta struct {
		Count int `json:"count"`
	}

	StaffScheduleQuery struct {
		StartDate string   `url:"start_date,omitempty"`
		EndDate   string   `url:"end_date,omitempty"`
		StaffIDs  []int64  `url:"staff_ids,omitempty"`
		Include   []string `url:"include,omitempty"`
	}

	StaffScheduleResponse struct {
		Success bool                `json:"success"`
		Data    []StaffScheduleData `json:"data"`
		Meta    StaffScheduleMeta   `json:"meta"`
	}

	DeleteSchedule struct {
		StaffID int64  `json:"staff_id"`
		Date    string `json:"date"`
	}

	SetStaffScheduleBody struct {
		Schedules       []StaffScheduleData `json:"schedules_to_set,omitempty"`
		DeleteSchedules []DeleteSchedule    `json:"schedules_to_delete,omitempty"`
	}
)

// StaffScheduleService reads and writes working-time grids.
type StaffScheduleService struct {
	manager *Manager
}

func NewStaffScheduleService(m *Manager) *StaffScheduleService {
	return &StaffScheduleService{manager: m}
}

func (s *StaffScheduleService) Get(ctx context.Context, companyID int64, q StaffScheduleQuery) (StaffScheduleResponse, error) {
	endpoint := fmt.Sprintf("company/%d/staff/schedule", companyID)
	return execute[StaffScheduleResponse](ctx, s.manager, http.MethodGet, endpoint, request{query: q}, true)
}

func (s *StaffScheduleService) Set(ctx context.Context, companyID int64, body SetStaffScheduleBody) (StaffScheduleResponse, error) {
	endpoint := fmt.Sprintf("company/%d/staff/schedule", companyID)
	return execute[StaffScheduleResponse](ctx, s.manager, http.MethodPut, endpoint, request{body: body}, true)
}
