package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// ComposerRepository интерфейс репозитория композеров
type ComposerRepository interface {
	GetBookedIndex(ctx context.Context, from, to string) (domain.BookedIndex, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе площадки
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
