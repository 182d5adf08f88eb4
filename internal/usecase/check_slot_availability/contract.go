package check_slot_availability

import "context"

// ComposerRepository интерфейс репозитория композеров
type ComposerRepository interface {
	// IsSlotTaken занят ли слот оплаченным композером, кроме excludeID
	IsSlotTaken(ctx context.Context, date, slot, excludeID string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
