package pricing

import "errors"

var (
	// ErrConfigNotFound возвращается, когда для типа события нет строки с ценами
	ErrConfigNotFound = errors.New("pricing.repository: pricing config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")
)
