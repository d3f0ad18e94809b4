package converter

import (
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
)

func SpecialtyToRow(specialty *entity.Specialty, doctorCount int64) dto.SpecialtyRow {
	return dto.SpecialtyRow{
		ID:          specialty.ID,
		Name:        specialty.Name,
		Description: specialty.Description,
		DoctorCount: doctorCount,
		IsActive:    specialty.IsActive,
	}
}
