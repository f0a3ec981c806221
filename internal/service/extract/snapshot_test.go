package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pintrends/internal/domain/trend"
)

func TestSnapshotFreezesPayload(t *testing.T) {
	snap := NewSnapshot(trend.FallbackMissingDataset())

	assert.NotEmpty(t, snap.SnapshotID())
	assert.Equal(t, 2, snap.TrendCount())

	// The payload is marshaled once; repeated reads are the same bytes.
	assert.Equal(t, snap.Payload(), snap.Payload())

	var decoded []trend.Summary
	require.NoError(t, json.Unmarshal(snap.Payload(), &decoded))
	assert.Equal(t, snap.Trends, decoded)
}

func TestSnapshotIDsAreUnique(t *testing.T) {
	a := NewSnapshot(nil)
	b := NewSnapshot(nil)

	assert.NotEqual(t, a.SnapshotID(), b.SnapshotID())
}
