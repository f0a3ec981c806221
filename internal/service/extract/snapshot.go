// internal/service/extract/snapshot.go

package extract

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pintrends/internal/domain/trend"
	"pintrends/internal/logger"
)

// Snapshot is the extractor's one-time output. The trends list is marshaled
// once at construction and the stored bytes are served verbatim afterwards,
// so repeat responses are byte-identical for the process lifetime.
type Snapshot struct {
	ID          string
	GeneratedAt time.Time
	Trends      []trend.Summary

	payload []byte
}

// NewSnapshot freezes a trends list into an immutable snapshot.
func NewSnapshot(trends []trend.Summary) *Snapshot {
	payload, err := json.Marshal(trends)
	if err != nil {
		// Summary marshals unconditionally; this guards future field changes.
		logger.Errorf("snapshot: marshal trends: %v", err)
		payload = []byte("[]")
	}

	return &Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Trends:      trends,
		payload:     payload,
	}
}

// Payload returns the frozen JSON encoding of the trends list.
func (s *Snapshot) Payload() []byte {
	return s.payload
}

// SnapshotID returns the snapshot's unique identifier.
func (s *Snapshot) SnapshotID() string {
	return s.ID
}

// TrendCount returns the number of trend summaries in the snapshot.
func (s *Snapshot) TrendCount() int {
	return len(s.Trends)
}
