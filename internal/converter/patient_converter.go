package converter

import (
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
)

func PatientToAdminRow(profile *entity.PatientProfile) dto.PatientAdminRow {
	return dto.PatientAdminRow{
		ProfileID:        profile.ID,
		UserID:           profile.UserID,
		FullName:         profile.User.FullName(),
		Email:            profile.User.Email,
		PhoneNumber:      profile.User.PhoneNumber,
		BloodGroup:       profile.BloodGroup,
		ProfileImagePath: profile.User.ProfileImagePath,
		IsActive:         profile.IsActive && profile.User.IsActive,
	}
}

func PatientToDetailResponse(profile *entity.PatientProfile) *dto.PatientDetailResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientDetailResponse{
		ProfileID:                profile.ID,
		User:                     *UserToResponse(&profile.User),
		BloodGroup:               profile.BloodGroup,
		EmergencyContactName:     profile.EmergencyContactName,
		EmergencyContact:         profile.EmergencyContact,
		EmergencyContactRelation: profile.EmergencyContactRelation,
		IsActive:                 profile.IsActive,
	}
}
