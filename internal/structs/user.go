package structs

import (
	"strings"
	"time"
)

type (
	// User is the locally persisted salon client linked to a Telegram account.
	User struct {
		ID           int64     `json:"id"`
		TelegramID   int64     `json:"telegram_id"`
		YClientsID   int64     `json:"yclients_id,omitempty"`
		ThreadID     string    `json:"thread_id,omitempty"`
		Name         string    `json:"name,omitempty"`
		Patronymic   string    `json:"patronymic,omitempty"`
		Surname      string    `json:"surname,omitempty"`
		Phone        string    `json:"phone,omitempty"`
		RegisteredAt time.Time `json:"registered_at"`
		LastActive   time.Time `json:"last_active"`
	}

	CreateUser struct {
		TelegramID int64  `json:"telegram_id"`
		YClientsID int64  `json:"yclients_id,omitempty"`
		Name       string `json:"name,omitempty"`
		Patronymic string `json:"patronymic,omitempty"`
		Surname    string `json:"surname,omitempty"`
		Phone      string `json:"phone,omitempty"`
	}

	UpdateUserProfile struct {
		Name       string `json:"name"`
		Patronymic string `json:"patronymic"`
		Surname    string `json:"surname"`
	}
)

// Fullname is "Surname Name Patronymic" the way the salon CRM stores client
// names, with empty parts skipped.
func (u User) Fullname() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.Surname, u.Name, u.Patronymic} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
