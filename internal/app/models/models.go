package models

// Role identifies which identity collection a token belongs to
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
)

// Gender values recorded on student profiles, used for election turnout stats
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)
