package domain

// Aggregate and event type names.
const (
	AggregateSharkAttack = "SharkAttack"

	EventSharkAttackModified = "SharkAttackModified"
	EventSharkAttackReported = "SharkAttackReported"

	// CurrentEventVersion is the payload version written by this service.
	CurrentEventVersion = 1

	// ModTypeField is the payload key carrying the ModKind.
	ModTypeField = "modType"
)

// ModKind tells the recovery handler how to apply an event payload.
type ModKind string

const (
	ModCreate        ModKind = "CREATE"
	ModUpdateMerge   ModKind = "UPDATE_MERGE"
	ModUpdateReplace ModKind = "UPDATE_REPLACE"
	ModDelete        ModKind = "DELETE"
)

// Event is an immutable record of one state transition of an aggregate.
// Sequence and AggregateVersion are assigned by the event log on append.
type Event struct {
	Sequence         int64          `json:"seq,omitempty"`
	EventType        string         `json:"et"`
	EventTypeVersion int            `json:"etv"`
	AggregateType    string         `json:"at"`
	AggregateID      string         `json:"aid"`
	AggregateVersion int64          `json:"av"`
	Data             map[string]any `json:"data"`
	User             string         `json:"user"`
	Timestamp        int64          `json:"timestamp"`
	AckKey           string         `json:"ackKey,omitempty"`
}

// ModKind returns the modification kind carried in the payload.
// An absent marker reads as an empty kind, which recovery treats as an upsert.
func (e Event) ModKind() ModKind {
	s, _ := e.Data[ModTypeField].(string)
	return ModKind(s)
}

// NewModifiedEvent builds a version 1 event for the SharkAttack aggregate.
// eventType defaults to SharkAttackModified when empty.
func NewModifiedEvent(kind ModKind, aggregateID, user string, data map[string]any, eventType string) Event {
	if eventType == "" {
		eventType = EventSharkAttackModified
	}
	payload := make(map[string]any, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload[ModTypeField] = string(kind)

	return Event{
		EventType:        eventType,
		EventTypeVersion: CurrentEventVersion,
		AggregateType:    AggregateSharkAttack,
		AggregateID:      aggregateID,
		Data:             payload,
		User:             user,
	}
}
