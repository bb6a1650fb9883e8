package converter

import (
	"healthcare-auth/internal/delivery/dto"
	"healthcare-auth/internal/domain/entity"
)

// UserToSummary converts a User entity to the compact auth response block
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil {
		return nil
	}

	return &dto.UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// UserToProfile converts a User entity to the full profile response
func UserToProfile(user *entity.User) *dto.ProfileResponse {
	if user == nil {
		return nil
	}

	profile := &dto.ProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		CreatedAt:   user.CreatedAt,
	}

	if user.DateOfBirth != nil {
		profile.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	// Include the role profile if it is loaded
	if user.DoctorProfile != nil {
		profile.DoctorProfile = &dto.DoctorProfileResponse{
			LicenseNumber:     user.DoctorProfile.LicenseNumber,
			Specialization:    user.DoctorProfile.Specialization,
			YearsOfExperience: user.DoctorProfile.YearsOfExperience,
		}
	}
	if user.PatientProfile != nil {
		profile.PatientProfile = &dto.PatientProfileResponse{
			PatientID:        user.PatientProfile.PatientID,
			EmergencyContact: user.PatientProfile.EmergencyContact,
			BloodType:        user.PatientProfile.BloodType,
		}
	}
	if user.NurseProfile != nil {
		profile.NurseProfile = &dto.NurseProfileResponse{
			NurseID:    user.NurseProfile.NurseID,
			Department: user.NurseProfile.Department,
			Shift:      user.NurseProfile.Shift,
		}
	}

	return profile
}
