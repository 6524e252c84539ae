package dto

type RegistrationRequest struct {
	Fullname         string `json:"fullname" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email,max=255"`
	Password         string `json:"password" binding:"required"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"user_id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}
