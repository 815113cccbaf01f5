package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type Holiday struct {
	BaseModel
	Name        string    `gorm:"type:varchar(200);uniqueIndex:idx_holiday_name_date,priority:1"`
	Date        time.Time `gorm:"type:date;uniqueIndex:idx_holiday_name_date,priority:2;index"`
	Description string
	IsRecurring bool   `gorm:"default:false"`
	CreatedBy   string `gorm:"type:varchar(36)"`
}

func (h *Holiday) Validate() error {
	if h.Name == "" {
		return errors.New("не указано название праздника")
	}
	if h.Date.IsZero() {
		return errors.New("не указана дата праздника")
	}
	return nil
}

// MatchesDate учитывает ежегодные праздники без привязки к году
func (h Holiday) MatchesDate(date time.Time) bool {
	if h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
		if h.IsRecurring {
			return true
		}
		return h.Date.Year() == date.Year()
	}
	return false
}
