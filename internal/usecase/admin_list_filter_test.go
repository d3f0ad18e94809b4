package usecase

import (
	"testing"

	"doctor-appointment-system/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func doctorRow(first, last, email string, profileActive, userActive bool, specialties ...string) entity.DoctorProfile {
	links := make([]entity.DoctorSpecialty, 0, len(specialties))
	for _, name := range specialties {
		links = append(links, entity.DoctorSpecialty{Specialty: entity.Specialty{Name: name}})
	}
	return entity.DoctorProfile{
		IsActive:    profileActive,
		User:        entity.User{FirstName: first, LastName: last, Email: email, IsActive: userActive},
		Specialties: links,
	}
}

func TestFilterDoctorRowsPillThenSearch(t *testing.T) {
	rows := []entity.DoctorProfile{
		doctorRow("Ayesha", "Rahman", "ayesha@clinic.test", true, true, "Cardiology"),
		doctorRow("Karim", "Hossain", "karim@clinic.test", false, true, "Dermatology"),
		doctorRow("Nadia", "Islam", "nadia@clinic.test", true, false, "Cardiology"),
	}

	// A doctor is active only when both profile and user are active
	active := filterDoctorRows(rows, "", "active")
	require.Len(t, active, 1)
	require.Equal(t, "ayesha@clinic.test", active[0].User.Email)

	inactive := filterDoctorRows(rows, "", "inactive")
	require.Len(t, inactive, 2)

	// Search covers the joined specialty names
	cardio := filterDoctorRows(rows, "cardio", "")
	require.Len(t, cardio, 2)

	// Pill narrows before search
	cardioActive := filterDoctorRows(rows, "cardio", "active")
	require.Len(t, cardioActive, 1)

	none := filterDoctorRows(rows, "neurology", "")
	require.Empty(t, none)
}

func TestFilterDoctorRowsSearchesFullName(t *testing.T) {
	rows := []entity.DoctorProfile{
		doctorRow("Ayesha", "Rahman", "ayesha@clinic.test", true, true),
	}

	require.Len(t, filterDoctorRows(rows, "ayesha rah", ""), 1)
	require.Len(t, filterDoctorRows(rows, "RAHMAN", ""), 1)
}

func TestFilterSpecialtyRows(t *testing.T) {
	rows := []entity.Specialty{
		{Name: "Cardiology", Description: "Heart care", IsActive: true},
		{Name: "Dermatology", Description: "Skin care", IsActive: false},
	}

	require.Len(t, filterSpecialtyRows(rows, "", ""), 2)
	require.Len(t, filterSpecialtyRows(rows, "", "active"), 1)
	require.Len(t, filterSpecialtyRows(rows, "skin", ""), 1)
	require.Empty(t, filterSpecialtyRows(rows, "skin", "active"))
}

func TestFilterReceptionistRowsSearchesDeskFields(t *testing.T) {
	rows := []entity.ReceptionistProfile{
		{
			IsActive:      true,
			User:          entity.User{FirstName: "Mim", LastName: "Akter", IsActive: true},
			OfficePhone:   "028844221",
			CounterNumber: "C-4",
		},
	}

	require.Len(t, filterReceptionistRows(rows, "c-4", ""), 1)
	require.Len(t, filterReceptionistRows(rows, "8844", ""), 1)
	require.Empty(t, filterReceptionistRows(rows, "c-9", ""))
}
