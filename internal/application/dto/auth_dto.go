package dto

import "time"

// RegisterRequest registro de una empresa con su usuario propietario.
type RegisterRequest struct {
	OwnerName    string `json:"ownerName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
	GSTNumber    string `json:"gstNumber"`
	Address      string `json:"address"`
	LogoURL      string `json:"logoUrl"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BusinessResponse perfil de la empresa.
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GSTNumber string    `json:"gstNumber"`
	Address   string    `json:"address"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse respuesta de register/login: token + usuario + empresa.
type AuthResponse struct {
	Token    string           `json:"token"`
	User     UserResponse     `json:"user"`
	Business BusinessResponse `json:"business"`
}

// UpdateBusinessRequest actualización del perfil de la empresa.
// El número GST es inmutable después del registro y no aparece aquí.
type UpdateBusinessRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	LogoURL string `json:"logoUrl"`
}
