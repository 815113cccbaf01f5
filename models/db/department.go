package dbmodels

import (
	"github.com/pkg/errors"
)

type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex"`
	Description string
	ManagerID   *string `gorm:"type:varchar(36);index"`
	Manager     *Employee
	IsActive    bool `gorm:"default:true"`
}

func (d *Department) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}
