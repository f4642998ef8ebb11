package dto

// LoginRequest el PIN compartido de acceso de la asociación.
type LoginRequest struct {
	PIN string `json:"pin"`
}

// LoginResponse token de sesión Bearer.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
