package converter

import (
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
)

func AdminToProfileResponse(profile *entity.AdminProfile) *dto.AdminProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.AdminProfileResponse{
		ProfileID:    profile.ID,
		User:         *UserToResponse(&profile.User),
		OfficeRoomNo: profile.OfficeRoomNo,
		OfficePhone:  profile.OfficePhone,
		IsSuperAdmin: profile.IsSuperAdmin,
	}
}
