package models

// Index is the payload published on the content-events channel whenever a
// document is created, updated or deleted.
type Index struct {
	MessageID  string `json:"message_id"`
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}
