package domain

import "time"

// User описывает профиль покупателя. Аутентификация выполняется внешним
// провайдером, здесь хранится только профиль и флаг администратора.
type User struct {
	ID          string
	Email       string
	DisplayName string
	IsAdmin     bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewUser(id, email, displayName string) *User {
	return &User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
	}
}
