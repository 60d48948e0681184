package ledger

// Entry is one recorded action in the journal.
type Entry struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	PlayerID  string `json:"player_id"`
	Action    any    `json:"action"` // generic action data
	Outcome   string `json:"outcome,omitempty"`
	Error     string `json:"error,omitempty"`
	CardCount int    `json:"card_count"`
}

// Record is the caller supplied part of an entry.
type Record struct {
	PlayerID  string
	Action    any
	Outcome   string
	Err       error
	CardCount int
}

// Rejected reports whether the recorded action failed.
func (e Entry) Rejected() bool {
	return e.Error != ""
}
