package dto

import (
	"time"

	"gastrack/internal/domain/user"
)

type UserDTO struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	IsStaff       bool      `json:"is_staff"`
	AccountNumber string    `json:"account_number"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:            u.ID(),
		Email:         u.Email().String(),
		FirstName:     u.Name().FirstName(),
		LastName:      u.Name().LastName(),
		IsStaff:       u.IsStaff(),
		AccountNumber: u.Profile().AccountNumber(),
		Address:       u.Profile().Address(),
		Phone:         u.Profile().Phone(),
		CreatedAt:     u.CreatedAt(),
	}
}
