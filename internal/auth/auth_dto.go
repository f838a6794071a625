package auth

type LoginRequest struct {
	IDPJLP   string `json:"id_pjlp" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID     string `json:"id"`
	IDPJLP string `json:"id_pjlp"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
