package profile

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required,min=3,max=255"`
	IDPJLP string `json:"id_pjlp" validate:"required,max=50"`
	Phone  string `json:"phone" validate:"omitempty,min=10,max=30"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type ProfileResponse struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	Name      string  `json:"name"`
	IDPJLP    string  `json:"id_pjlp"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
}
