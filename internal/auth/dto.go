package auth

type SignupRequest struct {
	Name        string `json:"name" binding:"required,max=20,rx_name"`
	Email       string `json:"email" binding:"required,max=50,rx_email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,rx_phone"`
	Password    string `json:"password" binding:"required,max=64,rx_password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,rx_email"`
	Password string `json:"password" binding:"required,max=64"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
