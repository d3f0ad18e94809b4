package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Admin

type AdminDashboardResponse struct {
	TotalAdmins        int64           `json:"total_admins"`
	TotalDoctors       int64           `json:"total_doctors"`
	TotalReceptionists int64           `json:"total_receptionists"`
	TotalPatients      int64           `json:"total_patients"`
	ActiveSpecialties  int64           `json:"active_specialties"`
	ActiveAppointments int64           `json:"active_appointments"`
	TodayAppointments  int64           `json:"today_appointments"`
	RevenueThisMonth   decimal.Decimal `json:"revenue_this_month"`
}

// Doctor

type RevenuePoint struct {
	Month string          `json:"month"` // "Jan" ... "Dec"
	Total decimal.Decimal `json:"total"`
}

type AppointmentRow struct {
	ID          int       `json:"id"`
	Time        time.Time `json:"time"`
	PatientName string    `json:"patient_name"`
	Status      string    `json:"status"`
	VisitType   string    `json:"visit_type,omitempty"`
}

type TodayStatusBreakdown struct {
	Accepted  int `json:"accepted"`
	Remaining int `json:"remaining"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type ScheduleBlockSummary struct {
	Label          string `json:"label"` // Morning, Afternoon, Evening
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	TotalSlots     int    `json:"total_slots"`
	BookedSlots    int    `json:"booked_slots"`
	RemainingSlots int    `json:"remaining_slots"`
}

type UnavailabilityWindow struct {
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	IsFullDay     bool      `json:"is_full_day"`
	Reason        string    `json:"reason,omitempty"`
}

type DoctorDashboardResponse struct {
	TodayAppointments      int64                  `json:"today_appointments"`
	UpcomingConfirmed      int64                  `json:"upcoming_confirmed"`
	CompletedThisMonth     int64                  `json:"completed_this_month"`
	CancelledThisMonth     int64                  `json:"cancelled_this_month"`
	NoShowThisMonth        int64                  `json:"no_show_this_month"`
	PatientsTreated        int64                  `json:"patients_treated"`
	RevenueThisMonth       decimal.Decimal        `json:"revenue_this_month"`
	AverageRating          float64                `json:"average_rating"`
	ReviewCount            int64                  `json:"review_count"`
	YearlyRevenue          []RevenuePoint         `json:"yearly_revenue"`
	TodaySchedule          []AppointmentRow       `json:"today_schedule"`
	StatusBreakdown        TodayStatusBreakdown   `json:"status_breakdown"`
	ScheduleBlocks         []ScheduleBlockSummary `json:"schedule_blocks"`
	UpcomingUnavailability []UnavailabilityWindow `json:"upcoming_unavailability"`
}

// Patient

type PatientDashboardResponse struct {
	UpcomingThisWeek    int64                   `json:"upcoming_this_week"`
	CompletedTotal      int64                   `json:"completed_total"`
	CancelledOrNoShow   int64                   `json:"cancelled_or_no_show"`
	DigitalPaymentsPaid decimal.Decimal         `json:"digital_payments_paid"`
	UnreadNotifications int64                   `json:"unread_notifications"`
	Doctors             DoctorDirectoryResponse `json:"doctors"`
}

// Receptionist

type RosterRow struct {
	AppointmentID int       `json:"appointment_id"`
	Time          time.Time `json:"time"`
	DoctorName    string    `json:"doctor_name"`
	PatientName   string    `json:"patient_name"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"` // "Paid (Cash)", "Pending", "Unpaid"
}

type NotificationRow struct {
	ID        int       `json:"id"`
	Subject   string    `json:"subject,omitempty"`
	Channel   string    `json:"channel"`
	Badge     string    `json:"badge"` // Important, Pending, Today, Viewed
	CreatedAt time.Time `json:"created_at"`
}

type ReceptionistDashboardResponse struct {
	TodayTotal           int64                   `json:"today_total"`
	TodayActive          int64                   `json:"today_active"`
	TodayInactive        int64                   `json:"today_inactive"`
	CashCollectedToday   decimal.Decimal         `json:"cash_collected_today"`
	PendingPaymentsToday int64                   `json:"pending_payments_today"`
	ActivePatients       int64                   `json:"active_patients"`
	ActiveDoctors        int64                   `json:"active_doctors"`
	Doctors              DoctorDirectoryResponse `json:"doctors"`
	TodayRoster          []RosterRow             `json:"today_roster"`
	RecentNotifications  []NotificationRow       `json:"recent_notifications"`
}
