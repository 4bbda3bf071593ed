package models

// UserResponse wraps a single token user, as returned by the auth endpoints,
// showMe and updateUser.
type UserResponse struct {
	User TokenUser `json:"user"`
}

// SingleUserResponse wraps a stored user (without password).
type SingleUserResponse struct {
	User User `json:"user"`
}

// UsersResponse is returned by the admin listing.
type UsersResponse struct {
	Users []User `json:"users"`

	Count int `json:"count"`
}

// MessageResponse is used for plain acknowledgements and by the error handler.
type MessageResponse struct {
	Msg string `json:"msg"`
}
