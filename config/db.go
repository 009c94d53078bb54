package config

import (
	"time"

	"github.com/Ezequiel060805/allge-care-apis/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxPoolConns = 10

// OpenDB connects to MySQL, sizes the connection pool and migrates the models.
// The returned handle is created once in main, injected into the controllers,
// and closed on shutdown; there is no package-level database state.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxPoolConns)
	sqlDB.SetMaxIdleConns(maxPoolConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Medicion{},
		&models.Configuracion{},
		&models.Alerta{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
