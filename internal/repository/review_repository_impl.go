package repository

import (
	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) StatsForDoctor(db *gorm.DB, doctorProfileID int) (int64, float64, error) {
	type row struct {
		Total   int64
		Average float64
	}
	var stats row
	err := db.Model(&entity.Review{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS average").
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ? AND is_visible = ?", true, true).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.Total, stats.Average, nil
}
