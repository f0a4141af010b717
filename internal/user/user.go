package user

import (
	"context"

	"salonbot/internal/structs"
	"salonbot/pkg/logger"
	messageRepo "salonbot/pkg/repository/postgres/messages_repo"
	userRepo "salonbot/pkg/repository/postgres/users_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger      logger.Logger
		UserRepo    userRepo.Repo
		MessageRepo messageRepo.Repo
	}

	Service interface {
		Register(ctx context.Context, req structs.CreateUser) (structs.User, error)
		GetByTelegramID(ctx context.Context, telegramID int64) (structs.User, error)
		UpdateThreadID(ctx context.Context, telegramID int64, threadID string) error
		Touch(ctx context.Context, telegramID int64) error
		LogMessage(ctx context.Context, userID int64, message, sender string)
	}

	service struct {
		logger      logger.Logger
		userRepo    userRepo.Repo
		messageRepo messageRepo.Repo
	}
)

func New(p Params) Service {
	return &service{
		logger:      p.Logger,
		userRepo:    p.UserRepo,
		messageRepo: p.MessageRepo,
	}
}

// Register creates the user, or refreshes the profile when the telegram id is
// already known. Re-registering lets a returning client fix their name or phone.
func (s *service) Register(ctx context.Context, req structs.CreateUser) (structs.User, error) {
	resp, err := s.userRepo.Create(ctx, req)
	if err == nil {
		return resp, nil
	}
	if err != structs.ErrUniqueViolation {
		s.logger.Error(ctx, "->userRepo.Create", zap.Error(err))
		return structs.User{}, err
	}

	profile := structs.UpdateUserProfile{
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Surname:    req.Surname,
	}
	if err := s.userRepo.UpdateProfile(ctx, req.TelegramID, profile); err != nil {
		s.logger.Error(ctx, "->userRepo.UpdateProfile", zap.Error(err))
		return structs.User{}, err
	}
	if req.Phone != "" {
		if err := s.userRepo.UpdatePhone(ctx, req.TelegramID, req.Phone); err != nil {
			s.logger.Error(ctx, "->userRepo.UpdatePhone", zap.Error(err))
			return structs.User{}, err
		}
	}
	if req.YClientsID != 0 {
		if err := s.userRepo.UpdateYClientsID(ctx, req.TelegramID, req.YClientsID); err != nil {
			s.logger.Error(ctx, "->userRepo.UpdateYClientsID", zap.Error(err))
			return structs.User{}, err
		}
	}
	return s.GetByTelegramID(ctx, req.TelegramID)
}

func (s *service) GetByTelegramID(ctx context.Context, telegramID int64) (structs.User, error) {
	resp, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if err != structs.ErrNotFound {
			s.logger.Error(ctx, "->userRepo.GetByTelegramID", zap.Error(err))
		}
		return structs.User{}, err
	}
	return resp, nil
}

func (s *service) UpdateThreadID(ctx context.Context, telegramID int64, threadID string) error {
	if err := s.userRepo.UpdateThreadID(ctx, telegramID, threadID); err != nil {
		s.logger.Error(ctx, "->userRepo.UpdateThreadID", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Touch(ctx context.Context, telegramID int64) error {
	return s.userRepo.Touch(ctx, telegramID)
}

// LogMessage records a chat turn. Logging failures must not break the
// conversation, so the error is only logged.
func (s *service) LogMessage(ctx context.Context, userID int64, message, sender string) {
	if _, err := s.messageRepo.Create(ctx, userID, message, sender); err != nil {
		s.logger.Error(ctx, "->messageRepo.Create", zap.Error(err))
	}
}
