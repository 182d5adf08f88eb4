package composer

import "errors"

var (
	// ErrComposerNotFound возвращается, когда композер не найден
	ErrComposerNotFound = errors.New("composer.repository: composer not found")

	// ErrSlotTaken возвращается, когда дата и слот уже заняты оплаченным композером
	ErrSlotTaken = errors.New("composer.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("composer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("composer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("composer.repository: failed to scan row")

	// ErrEmptyPatch возвращается, если в обновлении нет ни одного поля
	ErrEmptyPatch = errors.New("composer.repository: nothing to update")
)
