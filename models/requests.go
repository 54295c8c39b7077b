package models

// AuthenticateRequest is the body of POST /session.
type AuthenticateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUserRequest is the body of POST /users/create.
type CreateUserRequest struct {
	Name                 string `json:"name" validate:"required,min=3"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=6,max=72,eqfield=Password"`
	// IsAdmin is nil when the field is omitted or null.
	IsAdmin *bool `json:"is_admin"`
}

// UpdateUserRequest is the body of PUT /users/update/{id}. Every field is
// optional and an omitted field keeps the stored value. A name or email that
// is sent must pass the same rules as on create, so an empty string is
// rejected.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=3"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	// IsAdmin tells an omitted key apart from an explicit null; see
	// the role rules on the user service Update.
	IsAdmin NullableBool `json:"is_admin,omitzero"`
}

// UserIDParam carries the {id} path parameter. Any non-empty string is
// accepted; an id that matches no user is reported as not found.
type UserIDParam struct {
	ID string `json:"id" validate:"required"`
}
