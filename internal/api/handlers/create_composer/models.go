package create_composer

// CreateComposerRequest HTTP request model. Тело может отсутствовать
type CreateComposerRequest struct {
	EventType string `json:"eventType" validate:"omitempty,oneof=modest-wedding modest-elopement vow-renewal other"`
}
