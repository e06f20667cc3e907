package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Chave para o contexto que indica se o timezone já foi configurado
type timezoneKey struct{}

// SetTimezoneMiddleware cria um callback GORM que fixa o timezone da sessão antes das consultas
func SetTimezoneMiddleware(timezone string) func(db *gorm.DB) {
	statement := fmt.Sprintf("SET timezone = '%s'", timezone)

	return func(db *gorm.DB) {
		// Evita recursão infinita
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)
		db.Session(&gorm.Session{NewDB: true, Context: ctx}).Exec(statement)
	}
}

// RegisterMiddlewares registra o callback de timezone; UTC não precisa de ajuste
func RegisterMiddlewares(db *gorm.DB, timezone string) error {
	if timezone == "" || timezone == "UTC" {
		return nil
	}
	// só nomes IANA válidos chegam ao SET
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", timezone, err)
	}
	return db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware(timezone))
}
