package models

// SessionResponse is returned by POST /session: the token next to the
// public user fields, flattened into one object.
type SessionResponse struct {
	Token string `json:"token"`
	UserResponse
}

// Session is the result of a successful authentication.
type Session struct {
	Token Token
	User  User
}

// ToResponse builds the public projection of s.
func (s Session) ToResponse() SessionResponse {
	return SessionResponse{
		Token:        s.Token.SignedString,
		UserResponse: s.User.ToResponse(),
	}
}
