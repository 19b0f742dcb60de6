package users

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required"`
}

// ExistingUserResponse is returned when registration hits an identical
// (username, email) pair: a 200 no-op echoing the existing identity.
type ExistingUserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type UpdateUserRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}
