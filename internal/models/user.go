package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// LoginFields is the order in which login field violations are reported.
var LoginFields = []string{"username", "password"}

// Credential is one entry of the fixed credential set.
// Password is plaintext unless it holds a bcrypt hash.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// User is the public view returned on login.
type User struct {
	Username string `json:"username"`
}

type LoginPayload struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username,
			validation.NotNil, isString, validation.Required,
			validation.RuneLength(MinUsernameLength, 0).Error("must be at least 3 characters long"),
		),
		validation.Field(&p.Password,
			validation.NotNil, isString, validation.Required,
			validation.RuneLength(MinPasswordLength, 0).Error("must be at least 6 characters long"),
		),
	)
}

// Values returns the username and password of a payload that passed Validate.
func (p LoginPayload) Values() (username, password string) {
	username, _ = p.Username.(string)
	password, _ = p.Password.(string)
	return username, password
}
