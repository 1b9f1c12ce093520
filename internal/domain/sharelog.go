package domain

// DefaultLogCapacity is how many share log entries are kept.
const DefaultLogCapacity = 100

// AppendCapped appends entry to entries and keeps only the most recent
// capacity entries, evicting the oldest first. A non-positive capacity means
// DefaultLogCapacity. The returned slice never aliases entries.
func AppendCapped(entries []LogEntry, entry LogEntry, capacity int) []LogEntry {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}

	start := 0
	if n := len(entries) + 1; n > capacity {
		start = n - capacity
	}

	out := make([]LogEntry, 0, len(entries)-start+1)
	if start < len(entries) {
		out = append(out, entries[start:]...)
	}

	return append(out, entry)
}
