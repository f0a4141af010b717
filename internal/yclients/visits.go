package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	VisitModel struct {
		ID         int64         `json:"id"`
		Attendance int           `json:"attendance"`
		Comment    string        `json:"comment,omitempty"`
		Datetime   string        `json:"datetime,omitempty"`
		Records    []RecordModel `json:"records,omitempty"`
	}

	VisitResponse struct {
		Success bool            `json:"success"`
		Data    VisitModel      `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	VisitDetailsResponse struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	VisitTransaction struct {
		ID         int64   `json:"id,omitempty"`
		AccountID  int64   `json:"account_id,omitempty"`
		Amount     float64 `json:"amount"`
		TypeID     int     `json:"type_id,omitempty"`
		ExpenseID  int64   `json:"expense_id,omitempty"`
		ClientID   int64   `json:"client_id,omitempty"`
		MasterID   int64   `json:"master_id,omitempty"`
		SupplierID int64   `json:"supplier_id,omitempty"`
		Comment    string  `json:"comment,omitempty"`
	}

	UpdateVisitBody struct {
		Attendance            int                          `json:"attendance"`
		Comment               string                       `json:"comment"`
		NewTransactions       Optional[[]VisitTransaction] `json:"new_transactions,omitzero"`
		DeletedTransactionIDs Optional[[]int64]            `json:"deleted_transaction_ids,omitzero"`
		GoodsTransactions     Optional[[]VisitTransaction] `json:"goods_transactions,omitzero"`
		Services              Optional[[]RecordService]    `json:"services,omitzero"`
		FastPayment           Optional[int]                `json:"fast_payment,omitzero"`
	}
)

// VisitsService reads and closes out completed visits.
type VisitsService struct {
	manager *Manager
}

func NewVisitsService(m *Manager) *VisitsService {
	return &VisitsService{manager: m}
}

func (s *VisitsService) Get(ctx context.Context, visitID int64) (VisitResponse, error) {
	endpoint := fmt.Sprintf("visits/%d", visitID)
	return execute[VisitResponse](ctx, s.manager, http.MethodGet, endpoint, request{}, true)
}

func (s *VisitsService) Details(ctx context.Context, salonID, recordID, visitID int64) (VisitDetailsResponse, error) {
	endpoint := fmt.Sprintf("visit/details/%d/%d/%d", salonID, recordID, visitID)
	return execute[VisitDetailsResponse](ctx, s.manager, http.MethodGet, endpoint, request{}, true)
}

func (s *VisitsService) Update(ctx context.Context, visitID, recordID int64, body UpdateVisitBody) error {
	endpoint := fmt.Sprintf("visits/%d/%d", visitID, recordID)
	_, err := execute[okResponse](ctx, s.manager, http.MethodPut, endpoint, request{body: body}, true)
	return err
}
