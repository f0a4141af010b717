package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"salonbot/internal/structs"
	"salonbot/pkg/db"
	"salonbot/pkg/logger"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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
		Create(ctx context.Context, req structs.CreateUser) (structs.User, error)
		GetByTelegramID(ctx context.Context, telegramID int64) (structs.User, error)
		UpdateThreadID(ctx context.Context, telegramID int64, threadID string) error
		UpdateProfile(ctx context.Context, telegramID int64, req structs.UpdateUserProfile) error
		UpdatePhone(ctx context.Context, telegramID int64, phone string) error
		UpdateYClientsID(ctx context.Context, telegramID, yclientsID int64) error
		Touch(ctx context.Context, telegramID int64) error
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

func (r *repo) Create(ctx context.Context, req structs.CreateUser) (structs.User, error) {
	const query = `
        INSERT INTO users (telegram_id, yclients_id, name, patronymic, surname, phone)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, registered_at, last_active
    `
	resp := structs.User{
		TelegramID: req.TelegramID,
		YClientsID: req.YClientsID,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Surname:    req.Surname,
		Phone:      req.Phone,
	}
	err := r.db.QueryRow(ctx, query,
		req.TelegramID,
		nullInt64(req.YClientsID),
		nullStr(req.Name),
		nullStr(req.Patronymic),
		nullStr(req.Surname),
		nullStr(req.Phone),
	).Scan(&resp.ID, &resp.RegisteredAt, &resp.LastActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return structs.User{}, structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "err on r.db.QueryRow", zap.Error(err))
		return structs.User{}, fmt.Errorf("create user failed: %w", err)
	}

	return resp, nil
}

func (r *repo) GetByTelegramID(ctx context.Context, telegramID int64) (structs.User, error) {
	const query = `
        SELECT
            id,
            telegram_id,
            yclients_id,
            thread_id,
            name,
            patronymic,
            surname,
            phone,
            registered_at,
            last_active
        FROM users
        WHERE telegram_id = $1
    `
	var (
		resp       structs.User
		yclientsID sql.NullInt64
		threadID   sql.NullString
		name       sql.NullString
		patronymic sql.NullString
		surname    sql.NullString
		phone      sql.NullString
	)
	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&resp.ID,
		&resp.TelegramID,
		&yclientsID,
		&threadID,
		&name,
		&patronymic,
		&surname,
		&phone,
		&resp.RegisteredAt,
		&resp.LastActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "err on r.db.QueryRow", zap.Error(err))
		return structs.User{}, fmt.Errorf("get user failed: %w", err)
	}

	resp.YClientsID = yclientsID.Int64
	resp.ThreadID = threadID.String
	resp.Name = name.String
	resp.Patronymic = patronymic.String
	resp.Surname = surname.String
	resp.Phone = phone.String
	return resp, nil
}

func (r *repo) UpdateThreadID(ctx context.Context, telegramID int64, threadID string) error {
	return r.update(ctx, `UPDATE users SET thread_id = $2 WHERE telegram_id = $1`, telegramID, threadID)
}

func (r *repo) UpdateProfile(ctx context.Context, telegramID int64, req structs.UpdateUserProfile) error {
	const query = `
        UPDATE users
        SET name = $2, patronymic = $3, surname = $4
        WHERE telegram_id = $1
    `
	return r.update(ctx, query, telegramID, nullStr(req.Name), nullStr(req.Patronymic), nullStr(req.Surname))
}

func (r *repo) UpdatePhone(ctx context.Context, telegramID int64, phone string) error {
	return r.update(ctx, `UPDATE users SET phone = $2 WHERE telegram_id = $1`, telegramID, phone)
}

func (r *repo) UpdateYClientsID(ctx context.Context, telegramID, yclientsID int64) error {
	return r.update(ctx, `UPDATE users SET yclients_id = $2 WHERE telegram_id = $1`, telegramID, yclientsID)
}

func (r *repo) Touch(ctx context.Context, telegramID int64) error {
	return r.update(ctx, `UPDATE users SET last_active = NOW() WHERE telegram_id = $1`, telegramID)
}

func (r *repo) update(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error(ctx, "err on r.db.Exec", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNoRowsAffected
	}
	return nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
