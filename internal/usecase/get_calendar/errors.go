package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных датах или типе события
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrRangeTooLarge возвращается, когда диапазон длиннее MaxCalendarRangeDays
	ErrRangeTooLarge = errors.New("get_calendar: date range is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
