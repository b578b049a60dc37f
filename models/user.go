package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthToken — непрозрачный bearer-токен, хранится в базе и отзывается
// удалением строки.
type AuthToken struct {
	Key       string    `json:"token"`
	UserID    int       `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// UserProfile — профиль пользователя. Поля Username/Email/IsStaff —
// проекции из users только для чтения.
type UserProfile struct {
	UserID    int     `json:"-"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	IsStaff   bool    `json:"is_staff"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
