package yclients

import (
	"context"
	"fmt"
	"net/http"
)

type (
	CommentsQuery struct {
		StartDate string `url:"start_date,omitempty"`
		EndDate   string `url:"end_date,omitempty"`
		StaffID   *int64 `url:"staff_id,omitempty"`
		Rating    *int   `url:"rating,omitempty"`
		Page      *int   `url:"page,omitempty"`
		Count     *int   `url:"count,omitempty"`
	}

	Comment struct {
		ID         int64  `json:"id"`
		Type       string `json:"type,omitempty"`
		MasterID   int64  `json:"master_id,omitempty"`
		Text       string `json:"text"`
		Date       string `json:"date"`
		Rating     int    `json:"rating"`
		UserID     int64  `json:"user_id,omitempty"`
		UserName   string `json:"user_name,omitempty"`
		UserAvatar string `json:"user_avatar,omitempty"`
		RecordID   int64  `json:"record_id,omitempty"`
	}

	ClientCommentsMeta struct {
		Count int `json:"count"`
	}

	CommentsResponse struct {
		Success bool               `json:"success"`
		Data    []Comment          `json:"data"`
		Meta    ClientCommentsMeta `json:"meta"`
	}

	CreateCommentBody struct {
		Mark int    `json:"mark"`
		Text string `json:"text"`
		Name string `json:"name"`
	}

	CreateCommentResponse struct {
		Success bool    `json:"success"`
		Data    Comment `json:"data"`
	}
)

// CommentsService covers public salon and staff reviews.
type CommentsService struct {
	manager *Manager
}

func NewCommentsService(m *Manager) *CommentsService {
	return &CommentsService{manager: m}
}

func (s *CommentsService) List(ctx context.Context, companyID int64, q CommentsQuery) (CommentsResponse, error) {
	endpoint := fmt.Sprintf("comments/%d", companyID)
	return execute[CommentsResponse](ctx, s.manager, http.MethodPost, endpoint, request{query: q}, true)
}

func (s *CommentsService) Create(ctx context.Context, companyID, staffID int64, body CreateCommentBody) (CreateCommentResponse, error) {
	endpoint := fmt.Sprintf("comments/%d/%d", companyID, staffID)
	return execute[CreateCommentResponse](ctx, s.manager, http.MethodPost, endpoint, request{body: body}, true)
}
