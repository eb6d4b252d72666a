package gohz

import (
	"sync"

	"github.com/gammazero/deque"
)

// AdmissionRecord describes a single admitted emission.
type AdmissionRecord struct {
	// Level and Message are what was forwarded to the sink.
	Level   Level
	Message string

	// ElapsedNS is the elapsed-nanoseconds-since-epoch value the
	// gate claimed for this admission. Within one call site these
	// are strictly non-decreasing and consecutive ones are at least
	// one gate interval apart.
	ElapsedNS uint64
}

// admissionHistory keeps the most recent admitted emissions in a
// capped queue for diagnostics.
//
// It sits behind a plain mutex on purpose: only admitted calls reach
// it, and those are already rate limited by the gates, so contention
// here is negligible and never touches the throttled-away fast path.
type admissionHistory struct {
	Lock     sync.Mutex
	Capacity int
	Records  *deque.Deque
}

func newAdmissionHistory(capacity int) *admissionHistory {
	return &admissionHistory{
		Capacity: capacity,
		Records:  deque.New(capacity, capacity),
	}
}

func (h *admissionHistory) record(entry AdmissionRecord) {
	h.Lock.Lock()
	defer h.Lock.Unlock()

	for h.Records.Len() >= h.Capacity {
		h.Records.PopFront()
	}
	h.Records.PushBack(entry)
}

// snapshot returns the retained records, oldest first.
func (h *admissionHistory) snapshot() []AdmissionRecord {
	h.Lock.Lock()
	defer h.Lock.Unlock()

	out := make([]AdmissionRecord, h.Records.Len())
	for i := 0; i < h.Records.Len(); i++ {
		out[i] = h.Records.At(i).(AdmissionRecord)
	}
	return out
}
