package converter

import (
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
)

func ReceptionistToAdminRow(profile *entity.ReceptionistProfile) dto.ReceptionistAdminRow {
	return dto.ReceptionistAdminRow{
		ProfileID:        profile.ID,
		UserID:           profile.UserID,
		FullName:         profile.User.FullName(),
		Email:            profile.User.Email,
		PhoneNumber:      profile.User.PhoneNumber,
		OfficePhone:      profile.OfficePhone,
		CounterNumber:    profile.CounterNumber,
		ProfileImagePath: profile.User.ProfileImagePath,
		IsActive:         profile.IsActive && profile.User.IsActive,
	}
}

func ReceptionistToDetailResponse(profile *entity.ReceptionistProfile) *dto.ReceptionistDetailResponse {
	if profile == nil {
		return nil
	}

	return &dto.ReceptionistDetailResponse{
		ProfileID:     profile.ID,
		User:          *UserToResponse(&profile.User),
		OfficePhone:   profile.OfficePhone,
		CounterNumber: profile.CounterNumber,
		IsActive:      profile.IsActive,
	}
}
