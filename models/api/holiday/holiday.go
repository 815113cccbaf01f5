package holidayapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-attendance-backend/models/db"
)

type HolidayData struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
	IsRecurring bool   `json:"is_recurring"`
}

func (r HolidayData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название праздника")
	}
	if r.Date == "" {
		return errors.New("не указана дата праздника")
	}
	return nil
}

type HolidayView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func HolidayConvert(rec dbmodels.Holiday, creatorName string) HolidayView {
	return HolidayView{
		ID:          rec.ID,
		Name:        rec.Name,
		Date:        rec.Date.Format("2006-01-02"),
		Description: rec.Description,
		IsRecurring: rec.IsRecurring,
		CreatedBy:   creatorName,
		CreatedAt:   rec.CreatedAt,
	}
}
