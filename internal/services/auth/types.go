package auth

import (
	"strings"
	"time"

	"ledgerly/internal/models"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Avatar   string `json:"avatar" validate:"omitempty,max=4"`
}

func (in RegisterInput) normalized() RegisterInput {
	in.Email = models.NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Avatar = strings.TrimSpace(in.Avatar)
	return in
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileInput struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Avatar string `json:"avatar" validate:"omitempty,max=4"`
}

func (in ProfileInput) normalized() ProfileInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Avatar = strings.TrimSpace(in.Avatar)
	if in.Avatar == "" {
		in.Avatar = models.DefaultAvatar
	}
	return in
}

// Session is a signed token together with the user it was issued for.
type Session struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}
