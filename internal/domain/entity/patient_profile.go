package entity

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID           uint   `gorm:"primaryKey" json:"user_id"`
	PatientID        string `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_id"`
	EmergencyContact string `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	BloodType        string `gorm:"type:varchar(5)" json:"blood_type,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
