package requests

type RegisterDoctor struct {
	FullName  string `json:"full_name" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Specialty string `json:"specialty" validate:"required,min=3,max=100"`
}
