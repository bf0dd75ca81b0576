package lookuplog

import (
	"time"

	"gorm.io/gorm"
	"ulascansenturk/conditions-service/internal/geo"
)

type Repository interface {
	LogLookup(requestID string, coord geo.Coordinate, weatherOK, locationOK bool) error
	GetRecentLookups(limit int) ([]ConditionLookup, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(requestID string, coord geo.Coordinate, weatherOK, locationOK bool) error {
	lookup := ConditionLookup{
		RequestID:  requestID,
		Latitude:   coord.Latitude,
		Longitude:  coord.Longitude,
		WeatherOK:  weatherOK,
		LocationOK: locationOK,
		CreatedAt:  time.Now(),
	}

	return r.db.Create(&lookup).Error
}

func (r *LookupSQLRepository) GetRecentLookups(limit int) ([]ConditionLookup, error) {
	var lookups []ConditionLookup
	err := r.db.Order("created_at DESC").Limit(limit).Find(&lookups).Error
	if err != nil {
		return nil, err
	}
	return lookups, nil
}
