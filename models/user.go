package models

import "time"

// Role is the access level of a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleGuest
}

// RoleFromAdminFlag maps the is_admin request flag to a role.
func RoleFromAdminFlag(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleGuest
}

// User is the persisted account entity.
//
// PasswordHash is a bcrypt digest and is never serialized; handlers respond
// with [UserResponse] instead of this type.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"-"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;default:guest" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is the public projection of [User]. Only the fields listed
// here ever leave the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse builds the public projection of u.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToResponseList projects every user in users.
func ToResponseList(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToResponse())
	}
	return out
}
