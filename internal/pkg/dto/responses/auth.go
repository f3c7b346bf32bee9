package responses

type Login struct {
	Token string `json:"token"`
}

type Register struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
