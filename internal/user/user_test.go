package user

import (
	"context"
	"testing"

	"salonbot/internal/structs"
	"salonbot/pkg/logger"
)

type fakeUserRepo struct {
	users map[int64]structs.User

	createErr error
}

func (r *fakeUserRepo) Create(ctx context.Context, req structs.CreateUser) (structs.User, error) {
	if r.createErr != nil {
		return structs.User{}, r.createErr
	}
	if _, ok := r.users[req.TelegramID]; ok {
		return structs.User{}, structs.ErrUniqueViolation
	}
	u := structs.User{
		ID:         int64(len(r.users) + 1),
		TelegramID: req.TelegramID,
		YClientsID: req.YClientsID,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Surname:    req.Surname,
		Phone:      req.Phone,
	}
	r.users[req.TelegramID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (structs.User, error) {
	u, ok := r.users[telegramID]
	if !ok {
		return structs.User{}, structs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateThreadID(ctx context.Context, telegramID int64, threadID string) error {
	u := r.users[telegramID]
	u.ThreadID = threadID
	r.users[telegramID] = u
	return nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, telegramID int64, req structs.UpdateUserProfile) error {
	u, ok := r.users[telegramID]
	if !ok {
		return structs.ErrNotFound
	}
	u.Name = req.Name
	u.Patronymic = req.Patronymic
	u.Surname = req.Surname
	r.users[telegramID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePhone(ctx context.Context, telegramID int64, phone string) error {
	u, ok := r.users[telegramID]
	if !ok {
		return structs.ErrNotFound
	}
	u.Phone = phone
	r.users[telegramID] = u
	return nil
}

func (r *fakeUserRepo) UpdateYClientsID(ctx context.Context, telegramID, yclientsID int64) error {
	u, ok := r.users[telegramID]
	if !ok {
		return structs.ErrNotFound
	}
	u.YClientsID = yclientsID
	r.users[telegramID] = u
	return nil
}

func (r *fakeUserRepo) Touch(ctx context.Context, telegramID int64) error { return nil }

type fakeMessageRepo struct {
	created []string
}

func (r *fakeMessageRepo) Create(ctx context.Context, userID int64, message, sender string) (structs.Message, error) {
	r.created = append(r.created, message)
	return structs.Message{UserID: userID, Message: message, Sender: sender}, nil
}

func (r *fakeMessageRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]structs.Message, error) {
	return nil, nil
}

func newTestService() (Service, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[int64]structs.User{}}
	svc := &service{
		logger:      logger.New("error"),
		userRepo:    repo,
		messageRepo: &fakeMessageRepo{},
	}
	return svc, repo
}

func TestRegisterCreatesNewUser(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Register(context.Background(), structs.CreateUser{
		TelegramID: 100,
		Name:       "Анна",
		Surname:    "Иванова",
		Phone:      "79990001122",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.TelegramID != 100 || u.Name != "Анна" || u.Phone != "79990001122" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(repo.users))
	}
}

func TestRegisterRefreshesExistingUser(t *testing.T) {
	svc, repo := newTestService()
	repo.users[100] = structs.User{
		ID:         1,
		TelegramID: 100,
		Name:       "Аня",
		Phone:      "79990000000",
		ThreadID:   "thread_kept",
	}

	u, err := svc.Register(context.Background(), structs.CreateUser{
		TelegramID: 100,
		YClientsID: 777,
		Name:       "Анна",
		Patronymic: "Сергеевна",
		Surname:    "Иванова",
		Phone:      "79990001122",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Name != "Анна" || u.Patronymic != "Сергеевна" || u.Surname != "Иванова" {
		t.Fatalf("profile not refreshed: %+v", u)
	}
	if u.Phone != "79990001122" {
		t.Fatalf("phone not refreshed: %q", u.Phone)
	}
	if u.YClientsID != 777 {
		t.Fatalf("yclients id not refreshed: %d", u.YClientsID)
	}
	if u.ThreadID != "thread_kept" {
		t.Fatalf("thread must survive re-registration, got %q", u.ThreadID)
	}
}

func TestRegisterKeepsOldValuesWhenOmitted(t *testing.T) {
	svc, repo := newTestService()
	repo.users[100] = structs.User{
		ID:         1,
		TelegramID: 100,
		YClientsID: 777,
		Phone:      "79990000000",
	}

	u, err := svc.Register(context.Background(), structs.CreateUser{
		TelegramID: 100,
		Name:       "Анна",
		Surname:    "Иванова",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Phone != "79990000000" {
		t.Fatalf("empty phone must not overwrite, got %q", u.Phone)
	}
	if u.YClientsID != 777 {
		t.Fatalf("zero yclients id must not overwrite, got %d", u.YClientsID)
	}
}
