package entity

import (
	"time"
)

// User represents the centralized authentication table
type User struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:text;not null" json:"-"`
	FirstName   string     `gorm:"type:varchar(150)" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150)" json:"last_name"`
	Role        string     `gorm:"type:varchar(10);not null;index" json:"role"`
	PhoneNumber string     `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	IsActive    *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	NurseProfile   *NurseProfile   `gorm:"foreignKey:UserID" json:"nurse_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Active reports the IsActive flag, treating an unset pointer as active.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
