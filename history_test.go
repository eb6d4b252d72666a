package gohz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryRecordsInOrder(t *testing.T) {
	history := newAdmissionHistory(10)

	for i := 0; i < 5; i++ {
		history.record(AdmissionRecord{
			Level:     LevelInfo,
			Message:   fmt.Sprintf("entry %d", i),
			ElapsedNS: uint64(i) * 1000,
		})
	}

	snapshot := history.snapshot()
	assert.Len(t, snapshot, 5)
	for i, entry := range snapshot {
		assert.Equal(t, fmt.Sprintf("entry %d", i), entry.Message)
		assert.Equal(t, uint64(i)*1000, entry.ElapsedNS)
	}
}

func TestHistoryDropsOldestAtCapacity(t *testing.T) {
	history := newAdmissionHistory(3)

	for i := 0; i < 7; i++ {
		history.record(AdmissionRecord{
			Message: fmt.Sprintf("entry %d", i),
		})
	}

	snapshot := history.snapshot()
	assert.Len(t, snapshot, 3)
	assert.Equal(t, "entry 4", snapshot[0].Message)
	assert.Equal(t, "entry 5", snapshot[1].Message)
	assert.Equal(t, "entry 6", snapshot[2].Message)
}

func TestHistorySnapshotIsDetached(t *testing.T) {
	history := newAdmissionHistory(3)
	history.record(AdmissionRecord{Message: "entry"})

	snapshot := history.snapshot()
	history.record(AdmissionRecord{Message: "later entry"})

	assert.Len(t, snapshot, 1)
	assert.Len(t, history.snapshot(), 2)
}
