package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Role      string `bson:"role"`
	Email     string `bson:"email"`
	FullName  string `bson:"fullName"`
	Password  string `bson:"password"`
	DoctorID  string `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsPatient() bool {
	return u.Role == "patient"
}

func (u *User) IsDoctor() bool {
	return u.Role == "doctor"
}
