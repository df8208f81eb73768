package db

import (
	"github.com/grantdesk/grantdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the process-wide connection pool. TranslateError maps
// driver-level constraint violations to gorm sentinel errors so handlers
// can distinguish conflicts from other query failures.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()

	if err != nil {
		return nil, err
	}

	// Idle connections are held indefinitely once established.
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)

	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Club{},
		&models.ProcurementItem{},
		&models.Grant{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
