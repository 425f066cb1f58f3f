package services

import "errors"

// Ошибки уровня сервисов. REST-обработчики сопоставляют их с HTTP-статусами
// через errors.Is, поэтому сервисы оборачивают их с контекстом, не подменяя.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlertNotFound       = errors.New("alert not found")
	ErrValidation          = errors.New("validation failed")
)
