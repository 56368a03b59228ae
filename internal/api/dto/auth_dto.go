package dto

// LoginRequest payload for the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse reports the landing path for the authenticated role.
type LoginResponse struct {
	Role        string `json:"role"`
	RedirectTo  string `json:"redirect_to"`
	DisplayName string `json:"display_name,omitempty"`
}

// RegisterRequest payload for customer self-registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// TailorRegisterRequest payload for tailor applications.
type TailorRegisterRequest struct {
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	YearsExperience int    `json:"years_experience,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
}
