package usecase

import (
	"testing"
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestPaymentStatusLabel(t *testing.T) {
	require.Equal(t, "Unpaid", paymentStatusLabel(nil))

	require.Equal(t, "Paid (Cash)", paymentStatusLabel(&entity.Payment{
		Status: entity.PaymentStatusPaid, Method: entity.PaymentMethodCash,
	}))
	require.Equal(t, "Paid (Bkash)", paymentStatusLabel(&entity.Payment{
		Status: entity.PaymentStatusPaid, Method: entity.PaymentMethodBkash,
	}))
	require.Equal(t, "Pending", paymentStatusLabel(&entity.Payment{
		Status: entity.PaymentStatusPending, Method: entity.PaymentMethodCash,
	}))
	require.Equal(t, "Refunded", paymentStatusLabel(&entity.Payment{
		Status: entity.PaymentStatusRefunded, Method: entity.PaymentMethodCard,
	}))
	require.Equal(t, "Failed", paymentStatusLabel(&entity.Payment{
		Status: entity.PaymentStatusFailed, Method: entity.PaymentMethodNagad,
	}))
}

func TestNotificationBadge(t *testing.T) {
	now := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC) // 10:00 local

	require.Equal(t, "Important", notificationBadge(&entity.Notification{
		Status: entity.NotificationStatusFailed,
	}, now, dhaka))
	require.Equal(t, "Pending", notificationBadge(&entity.Notification{
		Status: entity.NotificationStatusPending,
	}, now, dhaka))

	sentToday := now.Add(-3 * time.Hour)
	require.Equal(t, "Today", notificationBadge(&entity.Notification{
		Status:    entity.NotificationStatusSent,
		SentAtUtc: &sentToday,
	}, now, dhaka))

	sentYesterday := now.Add(-24 * time.Hour)
	require.Equal(t, "Viewed", notificationBadge(&entity.Notification{
		Status:    entity.NotificationStatusSent,
		SentAtUtc: &sentYesterday,
	}, now, dhaka))
}

func TestNotificationBadgeFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)

	require.Equal(t, "Today", notificationBadge(&entity.Notification{
		Status:    entity.NotificationStatusSent,
		CreatedAt: now.Add(-time.Hour),
	}, now, dhaka))
}

func TestNotificationBadgeSameLocalDayAcrossUTCDates(t *testing.T) {
	// 19:00 UTC on the 9th and 02:00 UTC on the 10th are the same local day
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	sent := time.Date(2026, 3, 9, 19, 0, 0, 0, time.UTC)

	require.Equal(t, "Today", notificationBadge(&entity.Notification{
		Status:    entity.NotificationStatusSent,
		SentAtUtc: &sent,
	}, now, dhaka))
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "Cash", titleCase("cash"))
	require.Equal(t, "Bkash", titleCase("bkash"))
	require.Equal(t, "", titleCase(""))
}
