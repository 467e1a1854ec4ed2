package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RawData is the opaque structured payload attached to an event,
// stored as a JSON text column.
type RawData map[string]interface{}

func (r RawData) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *RawData) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for RawData: %T", value)
	}

	return json.Unmarshal(bytes, r)
}

type Event struct {
	ID             uuid.UUID `db:"id" json:"id"`
	RegionID       uuid.UUID `db:"region_id" json:"region_id"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
	Category       string    `db:"category" json:"category"`
	SentimentScore float64   `db:"sentiment_score" json:"sentiment_score"`
	SourceURL      string    `db:"source_url" json:"source_url"`
	RawData        RawData   `db:"raw_data" json:"raw_data,omitempty"`
	Title          string    `db:"title" json:"title"`
	Summary        string    `db:"summary" json:"summary"`
}
