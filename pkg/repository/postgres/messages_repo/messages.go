package messageRepo

import (
	"context"
	"fmt"

	"salonbot/internal/structs"
	"salonbot/pkg/db"
	"salonbot/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		Create(ctx context.Context, userID int64, message, sender string) (structs.Message, error)
		ListByUser(ctx context.Context, userID int64, limit int) ([]structs.Message, error)
	}

	repo struct {
		logger logger.Logger
		db     db.Querier
	}
)

func New(p Params) Repo {
	return &repo{
		logger: p.Logger,
		db:     p.DB,
	}
}

func (r *repo) Create(ctx context.Context, userID int64, message, sender string) (structs.Message, error) {
	const query = `
        INSERT INTO messages (id, user_id, message, sender)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at
    `
	resp := structs.Message{
		ID:      uuid.NewString(),
		UserID:  userID,
		Message: message,
		Sender:  sender,
	}
	err := r.db.QueryRow(ctx, query, resp.ID, userID, message, sender).Scan(&resp.CreatedAt)
	if err != nil {
		r.logger.Error(ctx, "err on r.db.QueryRow", zap.Error(err))
		return structs.Message{}, fmt.Errorf("create message failed: %w", err)
	}
	return resp, nil
}

func (r *repo) ListByUser(ctx context.Context, userID int64, limit int) ([]structs.Message, error) {
	const query = `
        SELECT id, user_id, message, sender, created_at
        FROM messages
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.logger.Error(ctx, "err on r.db.Query", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []structs.Message
	for rows.Next() {
		var m structs.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Sender, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
