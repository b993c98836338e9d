package sqlite

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open abre la base SQLite con llaves foráneas activas (necesarias para ON DELETE CASCADE).
// Se limita a una conexión: SQLite no tiene bloqueo por fila y así las transacciones
// del motor de stock quedan serializadas. Con ":memory:" además mantiene viva la base.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return db, nil
}

// Migrate crea o actualiza las tablas con sus constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&supplierModel{}, &productModel{}, &stockLogModel{}); err != nil {
		return fmt.Errorf("migrar sqlite: %w", err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
