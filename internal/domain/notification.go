package domain

// Materialized view notification routing.
const (
	NotificationTopic = "emi-gateway-materialized-view-updates"
	NotificationEvent = "FactsMngSharkAttackModified"

	// SubscribeAll is the subscription filter that matches every aggregate id.
	SubscribeAll = "ANY"
)

// Notification is what live subscribers receive. Data is the aggregate
// payload or the deletion marker.
type Notification struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// ID returns the aggregate id the notification refers to.
func (n Notification) ID() string {
	id, _ := n.Data[FieldID].(string)
	return id
}

// DeletedMarker is the payload published after a bulk delete.
func DeletedMarker() map[string]any {
	return map[string]any{
		FieldID:       "deleted",
		FieldName:     "",
		FieldActive:   false,
		"description": "",
	}
}
