package dto

import "time"

// Request DTOs

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"omitempty,max=150"`
	LastName        string `json:"last_name" validate:"omitempty,max=150"`
	Role            string `json:"role" validate:"required,oneof=doctor patient nurse"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,max=15"`
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address         string `json:"address" validate:"omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserSummary is the compact user block returned by register and login.
type UserSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    *UserSummary `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse is the full user record returned by the profile endpoint,
// including the block for the user's role profile.
type ProfileResponse struct {
	ID             uint                    `json:"id"`
	Username       string                  `json:"username"`
	Email          string                  `json:"email"`
	FirstName      string                  `json:"first_name"`
	LastName       string                  `json:"last_name"`
	Role           string                  `json:"role"`
	PhoneNumber    string                  `json:"phone_number"`
	DateOfBirth    string                  `json:"date_of_birth,omitempty"`
	Address        string                  `json:"address"`
	CreatedAt      time.Time               `json:"created_at"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	NurseProfile   *NurseProfileResponse   `json:"nurse_profile,omitempty"`
}

type DoctorProfileResponse struct {
	LicenseNumber     string `json:"license_number"`
	Specialization    string `json:"specialization"`
	YearsOfExperience int    `json:"years_of_experience"`
}

type PatientProfileResponse struct {
	PatientID        string `json:"patient_id"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	BloodType        string `json:"blood_type,omitempty"`
}

type NurseProfileResponse struct {
	NurseID    string `json:"nurse_id"`
	Department string `json:"department"`
	Shift      string `json:"shift"`
}
