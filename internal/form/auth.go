package form

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (f *SignUpRequest) Validate() error {
	trim(&f.Email, &f.FullName)
	f.Email = strings.ToLower(f.Email)
	return ValidateStruct(f,
		validation.Field(&f.Email, required(), emailRule, maxRunes(255)),
		validation.Field(&f.Password, required(), minRunes(6, "validation.password_min"), maxRunes(128)),
		validation.Field(&f.FullName, maxRunes(255)),
	)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f *SignInRequest) Validate() error {
	trim(&f.Email)
	f.Email = strings.ToLower(f.Email)
	return ValidateStruct(f,
		validation.Field(&f.Email, required(), emailRule),
		validation.Field(&f.Password, required()),
	)
}

type GrantAdminRequest struct {
	MasterPassword string `json:"master_password"`
	Email          string `json:"email"`
}

func (f *GrantAdminRequest) Validate() error {
	trim(&f.Email)
	f.Email = strings.ToLower(f.Email)
	return ValidateStruct(f,
		validation.Field(&f.MasterPassword, required()),
		validation.Field(&f.Email, required(), emailRule),
	)
}
