package dto

import (
	"net/url"
	"strings"

	"tasklist/internal/domains/user/model"
	"tasklist/shared/constant"
	sharedModel "tasklist/shared/model"
	"tasklist/shared/timezone"

	"github.com/google/uuid"
)

// SignupRequest carries the account creation form.
type SignupRequest struct {
	Name     string `form:"name" validate:"required,max=50"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8,max=128"`
}

func (d *SignupRequest) FromForm(form url.Values) {
	d.Name = strings.TrimSpace(form.Get(constant.FormFieldName))
	d.Email = strings.TrimSpace(strings.ToLower(form.Get(constant.FormFieldEmail)))
	d.Password = form.Get(constant.FormFieldPassword)
}

// ToModel builds the user row. The caller supplies the already-hashed
// password; raw passwords never reach the model.
func (d *SignupRequest) ToModel(passwordHash string) model.User {
	now := timezone.Now()

	return model.User{
		ID:           uuid.NewString(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: passwordHash,
		Metadata: sharedModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// LoginRequest carries the credential form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (d *LoginRequest) FromForm(form url.Values) {
	d.Email = strings.TrimSpace(strings.ToLower(form.Get(constant.FormFieldEmail)))
	d.Password = form.Get(constant.FormFieldPassword)
}
