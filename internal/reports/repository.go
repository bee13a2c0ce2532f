package reports

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReportRepository is the only read path into booking storage.
type ReportRepository interface {
	// FindEventsInRange returns events with gte <= date <= lte, oldest first.
	FindEventsInRange(ctx context.Context, gte, lte time.Time) ([]EventRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReportRepository {
	return &repository{db: db}
}

func (r *repository) FindEventsInRange(ctx context.Context, gte, lte time.Time) ([]EventRecord, error) {
	out := []EventRecord{}
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", gte, lte).
		Order("date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
