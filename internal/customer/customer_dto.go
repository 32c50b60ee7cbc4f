package customer

type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Password        *string `json:"password"`
	CurrentPassword *string `json:"current_password"`
}

type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
