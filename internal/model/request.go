package model

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ActivateRequest struct {
	UserID   string `json:"userId"`
	IsActive *bool  `json:"isActive"`
}

type AssignNGORequest struct {
	UserID string `json:"userId"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
