package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const genesisPrevHash = "0"

// Journal is a hash-chained, append-only list of entries.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewJournal creates a journal holding only its genesis entry.
func NewJournal() *Journal {
	j := &Journal{now: time.Now}
	genesis := Entry{
		Index:     0,
		Timestamp: j.now().UnixNano(),
		PrevHash:  genesisPrevHash,
		Action:    "genesis",
	}
	genesis.Hash = calculateHash(genesis)
	j.entries = append(j.entries, genesis)
	return j
}

// Append links a new entry for r to the latest one.
func (j *Journal) Append(r Record) (Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := j.entries[len(j.entries)-1]
	e := Entry{
		Index:     latest.Index + 1,
		Timestamp: j.now().UnixNano(),
		PrevHash:  latest.Hash,
		PlayerID:  r.PlayerID,
		Action:    r.Action,
		Outcome:   r.Outcome,
		CardCount: r.CardCount,
	}
	if r.Err != nil {
		e.Error = r.Err.Error()
	}
	e.Hash = calculateHash(e)

	if err := validateEntry(e, latest); err != nil {
		return Entry{}, fmt.Errorf("invalid entry: %w", err)
	}
	j.entries = append(j.entries, e)
	return e, nil
}

// Latest returns the most recently appended entry.
func (j *Journal) Latest() Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.entries[len(j.entries)-1]
}

// Get retrieves an entry by index.
func (j *Journal) Get(index int) (Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.entries) {
		return Entry{}, fmt.Errorf("index %d out of range", index)
	}
	return j.entries[index], nil
}

// Len returns the number of entries, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Entries returns a copy of the journal.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Verify checks the genesis entry and then each entry's index, link to its
// predecessor and hash.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 {
		return fmt.Errorf("empty journal")
	}
	if j.entries[0].PrevHash != genesisPrevHash || j.entries[0].Hash != calculateHash(j.entries[0]) {
		return fmt.Errorf("invalid genesis entry")
	}
	for i := 1; i < len(j.entries); i++ {
		if err := validateEntry(j.entries[i], j.entries[i-1]); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of an entry over every field but
// the hash itself. The action is JSON marshaled before hashing.
func calculateHash(e Entry) string {
	actionBytes, _ := json.Marshal(e.Action)
	data := fmt.Sprintf("%d%d%s%s%s%s%s%d",
		e.Index,
		e.Timestamp,
		e.PrevHash,
		e.PlayerID,
		string(actionBytes),
		e.Outcome,
		e.Error,
		e.CardCount,
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
