package responses

type Doctor struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
}
