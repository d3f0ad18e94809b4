package converter

import (
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
)

// DoctorToAdminRow converts a DoctorProfile (User and Specialties preloaded)
// to the admin list row shape.
func DoctorToAdminRow(profile *entity.DoctorProfile) dto.DoctorAdminRow {
	return dto.DoctorAdminRow{
		ProfileID:        profile.ID,
		UserID:           profile.UserID,
		FullName:         profile.User.FullName(),
		Email:            profile.User.Email,
		PhoneNumber:      profile.User.PhoneNumber,
		Specialties:      profile.SpecialtyNames(),
		Qualification:    profile.Qualification,
		Experience:       profile.Experience,
		ProfileImagePath: profile.User.ProfileImagePath,
		IsActive:         profile.IsActive && profile.User.IsActive,
	}
}

func DoctorToDetailResponse(profile *entity.DoctorProfile) *dto.DoctorDetailResponse {
	if profile == nil {
		return nil
	}

	specialtyIDs := make([]int, 0, len(profile.Specialties))
	for _, ds := range profile.Specialties {
		specialtyIDs = append(specialtyIDs, ds.SpecialtyID)
	}

	return &dto.DoctorDetailResponse{
		ProfileID:               profile.ID,
		User:                    *UserToResponse(&profile.User),
		LicenseNumber:           profile.LicenseNumber,
		Qualification:           profile.Qualification,
		Designation:             profile.Designation,
		Experience:              profile.Experience,
		VisitCharge:             profile.VisitCharge,
		FollowUpCharge:          profile.FollowUpCharge,
		IsTelemedicineAvailable: profile.IsTelemedicineAvailable,
		Description:             profile.Description,
		RoomNo:                  profile.RoomNo,
		MaxAppointmentsPerDay:   profile.MaxAppointmentsPerDay,
		AutoAcceptAppointments:  profile.AutoAcceptAppointments,
		SpecialtyIDs:            specialtyIDs,
		Specialties:             profile.SpecialtyNames(),
		IsActive:                profile.IsActive,
	}
}

func DoctorToCard(profile *entity.DoctorProfile) dto.DoctorCard {
	return dto.DoctorCard{
		ProfileID:               profile.ID,
		FullName:                profile.User.FullName(),
		Specialties:             profile.SpecialtyNames(),
		Qualification:           profile.Qualification,
		Designation:             profile.Designation,
		Experience:              profile.Experience,
		VisitCharge:             profile.VisitCharge,
		Rating:                  profile.Rating,
		TotalReviews:            profile.TotalReviews,
		ProfileImagePath:        profile.User.ProfileImagePath,
		IsTelemedicineAvailable: profile.IsTelemedicineAvailable,
	}
}
