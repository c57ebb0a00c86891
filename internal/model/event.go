package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents an event document in the store. Organizers submit
// arbitrary fields (title, description, owner email, ...) alongside the
// known ones; the inline map preserves them across reads and responses.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	EventDate     string             `bson:"eventDate"` // calendar date, YYYY-MM-DD
	EventTime     string             `bson:"eventTime"` // local time, HH:MM
	AttendeeCount int                `bson:"attendeeCount"`
	JoinedMembers []string           `bson:"joinedMembers"`
	Extra         map[string]any     `bson:",inline"`
}

// SortKey is the derived datetime the event listing is ordered by.
// It is computed at query time, never stored.
func (e Event) SortKey() string {
	return e.EventDate + "T" + e.EventTime
}

// MarshalJSON flattens the known fields and the organizer-supplied
// extras into a single document, the shape clients submitted.
func (e Event) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(e.Extra)+5)
	for k, v := range e.Extra {
		doc[k] = v
	}
	if !e.ID.IsZero() {
		doc["_id"] = e.ID
	}
	doc["eventDate"] = e.EventDate
	doc["eventTime"] = e.EventTime
	doc["attendeeCount"] = e.AttendeeCount
	members := e.JoinedMembers
	if members == nil {
		members = []string{}
	}
	doc["joinedMembers"] = members
	return json.Marshal(doc)
}
