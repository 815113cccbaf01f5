package dbmodels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.Open("host=localhost user=hr dbname=hr"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestEmployeeAfterDeleteCascade(t *testing.T) {
	db := openDryRunDB(t)
	rec := Employee{BaseModel: BaseModel{ID: "emp-1"}}

	require.NoError(t, rec.AfterDelete(db))

	// ошибка каскада должна дойти до вызывающей транзакции
	broken := db.Session(&gorm.Session{})
	broken.AddError(errors.New("соединение потеряно"))
	err := rec.AfterDelete(broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "соединение потеряно")
}

func TestEmployeeAfterDeleteWithoutID(t *testing.T) {
	db := openDryRunDB(t)
	rec := Employee{}
	require.NoError(t, rec.AfterDelete(db))
}
