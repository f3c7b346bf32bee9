package models

type Doctor struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	FullName  string `bson:"fullName"`
	Email     string `bson:"email"`
	Specialty string `bson:"specialty"`
	TimeModel `bson:",inline"`
}
