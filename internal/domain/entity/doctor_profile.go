package entity

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID            uint   `gorm:"primaryKey" json:"user_id"`
	LicenseNumber     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization    string `gorm:"type:varchar(100);not null;default:'General Medicine'" json:"specialization"`
	YearsOfExperience int    `gorm:"not null;default:0" json:"years_of_experience"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
