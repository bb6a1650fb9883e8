package entity

// Role constants. Role is assigned once at registration together with its
// matching profile row; no operation mutates it afterwards.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleNurse   = "nurse"
)
