package lookuplog

import (
	"time"
)

// ConditionLookup records the outcome of one combined lookup. It holds no weather or
// location values and is never read back to serve a request.
type ConditionLookup struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RequestID  string    `json:"request_id" gorm:"column:request_id;uniqueIndex:idx_request_id"`
	Latitude   float64   `json:"latitude" gorm:"column:latitude"`
	Longitude  float64   `json:"longitude" gorm:"column:longitude"`
	WeatherOK  bool      `json:"weather_ok" gorm:"column:weather_ok"`
	LocationOK bool      `json:"location_ok" gorm:"column:location_ok"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (ConditionLookup) TableName() string {
	return "condition_lookups"
}
