package repository

import (
	"gorm.io/gorm"
)

type ReviewRepository interface {
	// StatsForDoctor returns count and average rating over active,
	// visible reviews. Average is 0 when there are no reviews.
	StatsForDoctor(db *gorm.DB, doctorProfileID int) (int64, float64, error)
}
