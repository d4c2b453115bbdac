package models

import (
	"encoding/json"
	"time"
)

// ActivityLogCap bounds the activity ring buffer; the oldest entries beyond
// it are silently dropped.
const ActivityLogCap = 50

// ActivityEntry records one content-generation event. The payload holds the
// full generated content so a lesson can be reopened later.
type ActivityEntry struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Module    string          `json:"module"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
}
