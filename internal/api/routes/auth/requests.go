package auth

type TokenLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenLoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenLogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}
