package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 540, true},
		{"09:00:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"9am", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if !tt.ok {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestDashboardPath(t *testing.T) {
	require.Equal(t, "/api/v1/dashboard/admin", DashboardPath(RoleIDAdmin))
	require.Equal(t, "/api/v1/dashboard/doctor", DashboardPath(RoleIDDoctor))
	require.Equal(t, "/api/v1/dashboard/receptionist", DashboardPath(RoleIDReceptionist))
	require.Equal(t, "/api/v1/dashboard/patient", DashboardPath(RoleIDPatient))
	require.Equal(t, "/", DashboardPath(0))
}

func TestPaymentRevenueAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

	p := Payment{CreatedAt: created}
	require.Equal(t, created, p.RevenueAt())

	p.PaidAtUtc = &paid
	require.Equal(t, paid, p.RevenueAt())
}

func TestPaymentIsDigital(t *testing.T) {
	require.False(t, (&Payment{Method: PaymentMethodCash}).IsDigital())
	require.True(t, (&Payment{Method: PaymentMethodBkash}).IsDigital())
	require.True(t, (&Payment{Method: PaymentMethodCard}).IsDigital())
}

func TestSpecialtyNames(t *testing.T) {
	d := DoctorProfile{Specialties: []DoctorSpecialty{
		{Specialty: Specialty{Name: "Cardiology"}},
		{Specialty: Specialty{Name: "Internal Medicine"}},
	}}
	require.Equal(t, "Cardiology, Internal Medicine", d.SpecialtyNames())

	require.Equal(t, "", (&DoctorProfile{}).SpecialtyNames())
}
