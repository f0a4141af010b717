package yclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type (
	// ClientModel is the client card as the API returns it.
	ClientModel struct {
		ID           int64    `json:"id"`
		Name         string   `json:"name"`
		Surname      string   `json:"surname,omitempty"`
		Patronymic   string   `json:"patronymic,omitempty"`
		Phone        string   `json:"phone"`
		Email        string   `json:"email,omitempty"`
		Card         string   `json:"card,omitempty"`
		BirthDate    string   `json:"birth_date,omitempty"`
		Comment      string   `json:"comment,omitempty"`
		Discount     float64  `json:"discount,omitempty"`
		Visits       int      `json:"visits,omitempty"`
		SexID        int      `json:"sex_id,omitempty"`
		ImportanceID int      `json:"importance_id,omitempty"`
		Categories   []int    `json:"categories,omitempty"`
		CustomFields any      `json:"custom_fields,omitempty"`
		Spent        float64  `json:"spent,omitempty"`
		Balance      float64  `json:"balance,omitempty"`
		Tags         []string `json:"tags,omitempty"`
	}

	SearchClientsBody struct {
		Page             int      `json:"page,omitempty"`
		PageSize         int      `json:"page_size,omitempty"`
		Fields           []string `json:"fields,omitempty"`
		OrderBy          string   `json:"order_by,omitempty"`
		OrderByDirection string   `json:"order_by_direction,omitempty"`
		Operation        string   `json:"operation,omitempty"`
		Filters          Filters  `json:"filters,omitempty"`
	}

	SearchClientsMeta struct {
		TotalCount int `json:"total_count"`
	}

	SearchClientsResponse struct {
		Success bool              `json:"success"`
		Data    []ClientModel     `json:"data"`
		Meta    SearchClientsMeta `json:"meta"`
	}

	CreateClientBody struct {
		Name         string                   `json:"name"`
		Phone        string                   `json:"phone"`
		Surname      Optional[string]         `json:"surname,omitzero"`
		Patronymic   Optional[string]         `json:"patronymic,omitzero"`
		Email        Optional[string]         `json:"email,omitzero"`
		SexID        Optional[int]            `json:"sex_id,omitzero"`
		ImportanceID Optional[int]            `json:"importance_id,omitzero"`
		Discount     Optional[float64]        `json:"discount,omitzero"`
		Card         Optional[string]         `json:"card,omitzero"`
		BirthDate    Optional[string]         `json:"birth_date,omitzero"`
		Comment      Optional[string]         `json:"comment,omitzero"`
		Categories   Optional[[]int]          `json:"categories,omitzero"`
		CustomFields Optional[map[string]any] `json:"custom_fields,omitzero"`
	}

	ClientResponse struct {
		Success bool            `json:"success"`
		Data    ClientModel     `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	// UpdateClientBody is a partial update: unset fields never reach the wire.
	UpdateClientBody struct {
		Name         Optional[string]  `json:"name,omitzero"`
		Surname      Optional[string]  `json:"surname,omitzero"`
		Patronymic   Optional[string]  `json:"patronymic,omitzero"`
		Phone        Optional[string]  `json:"phone,omitzero"`
		Email        Optional[string]  `json:"email,omitzero"`
		SexID        Optional[int]     `json:"sex_id,omitzero"`
		ImportanceID Optional[int]     `json:"importance_id,omitzero"`
		Discount     Optional[float64] `json:"discount,omitzero"`
		Card         Optional[string]  `json:"card,omitzero"`
		BirthDate    Optional[string]  `json:"birth_date,omitzero"`
		Comment      Optional[string]  `json:"comment,omitzero"`
		Categories   Optional[[]int]   `json:"categories,omitzero"`
	}

	VisitsSearchBody struct {
		ClientID    int64  `json:"client_id,omitempty"`
		ClientPhone string `json:"client_phone,omitempty"`
		FromDate    string `json:"from,omitempty"`
		ToDate      string `json:"to,omitempty"`
		Attendance  *int   `json:"attendance,omitempty"`
	}

	VisitsSearchResponse struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	ClientComment struct {
		ID     int64  `json:"id"`
		UserID int64  `json:"user_id"`
		Text   string `json:"text"`
		Date   string `json:"date"`
	}

	ClientCommentsResponse struct {
		Success bool            `json:"success"`
		Data    []ClientComment `json:"data"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}

	CreateClientCommentBody struct {
		Text string `json:"text"`
	}

	okResponse struct {
		Success bool            `json:"success"`
		Meta    json.RawMessage `json:"meta,omitempty"`
	}
)

// ClientsService covers client cards, their visit history and comments.
type ClientsService struct {
	manager *Manager
}

func NewClientsService(m *Manager) *ClientsService {
	return &ClientsService{manager: m}
}

func (s *ClientsService) Search(ctx context.Context, companyID int64, body SearchClientsBody) (SearchClientsResponse, error) {
	endpoint := fmt.Sprintf("company/%d/clients/search", companyID)
	return execute[SearchClientsResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *ClientsService) Create(ctx context.Context, companyID int64, body CreateClientBody) (ClientResponse, error) {
	endpoint := fmt.Sprintf("clients/%d", companyID)
	return execute[ClientResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

// BulkCreate sends the clients as a bare JSON array, not an object.
func (s *ClientsService) BulkCreate(ctx context.Context, companyID int64, clients []CreateClientBody) (SearchClientsResponse, error) {
	endpoint := fmt.Sprintf("clients/%d/bulk", companyID)
	return execute[SearchClientsResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: clients}, true)
}

func (s *ClientsService) SearchVisits(ctx context.Context, companyID int64, body VisitsSearchBody) (VisitsSearchResponse, error) {
	endpoint := fmt.Sprintf("company/%d/clients/visits/search", companyID)
	return execute[VisitsSearchResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *ClientsService) Get(ctx context.Context, companyID, clientID int64) (ClientResponse, error) {
	endpoint := fmt.Sprintf("client/%d/%d", companyID, clientID)
	return execute[ClientResponse](ctx, s.manager, http.MethodPost, endpoint, request{}, true)
}

func (s *ClientsService) Update(ctx context.Context, companyID, clientID int64, body UpdateClientBody) (ClientResponse, error) {
	endpoint := fmt.Sprintf("client/%d/%d", companyID, clientID)
	return execute[ClientResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *ClientsService) Delete(ctx context.Context, companyID, clientID int64) error {
	endpoint := fmt.Sprintf("client/%d/%d", companyID, clientID)
	_, err := execute[okResponse](ctx, s.manager, http.MethodDelete, endpoint, request{}, true)
	return err
}

func (s *ClientsService) Comments(ctx context.Context, companyID, clientID int64) (ClientCommentsResponse, error) {
	endpoint := fmt.Sprintf("company/%d/clients/%d/comments", companyID, clientID)
	return execute[ClientCommentsResponse](ctx, s.manager, http.MethodPost, endpoint, request{}, true)
}

func (s *ClientsService) CreateComment(ctx context.Context, companyID, clientID int64, body CreateClientCommentBody) (ClientCommentsResponse, error) {
	endpoint := fmt.Sprintf("company/%d/clients/%d/comments", companyID, clientID)
	return execute[ClientCommentsResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}

func (s *ClientsService) DeleteComment(ctx context.Context, companyID, clientID, commentID int64) error {
	endpoint := fmt.Sprintf("company/%d/clients/%d/comments/%d", companyID, clientID, commentID)
	_, err := execute[okResponse](ctx, s.manager, http.MethodPost, endpoint, request{}, true)
	return err
}
