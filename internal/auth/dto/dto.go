package dto

type RegisterDTO struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Status   string `json:"status"   validate:"omitempty,max=20"`
}

// LoginDTO binds the OAuth2 password grant form fields.
type LoginDTO struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}
