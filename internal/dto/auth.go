package dto

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"admin@invodash.dev"`
	Password string `json:"password" validate:"required,min=6" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
