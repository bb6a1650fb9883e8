package entity

// NurseProfile represents nurse-specific profile data
type NurseProfile struct {
	UserID     uint   `gorm:"primaryKey" json:"user_id"`
	NurseID    string `gorm:"type:varchar(20);uniqueIndex;not null" json:"nurse_id"`
	Department string `gorm:"type:varchar(100);not null;default:'General'" json:"department"`
	Shift      string `gorm:"type:varchar(20);not null;default:'Day'" json:"shift"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (NurseProfile) TableName() string {
	return "nurse_profiles"
}
