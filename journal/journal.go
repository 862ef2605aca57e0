package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"sync"
)

var ErrEmptyJournal = errors.New("journal is empty")

type Journal struct {
	mu     sync.RWMutex
	events []Event
}

// New creates a journal with its genesis event. The genesis event has index
// 0 and previous hash "0"; data identifies the game.
func New(data map[string]string) *Journal {
	j := &Journal{}
	genesis := Event{
		Index:    0,
		PrevHash: "0",
		Kind:     KindGenesis,
		Data:     maps.Clone(data),
	}
	genesis.Hash = calculateHash(genesis)
	j.events = append(j.events, genesis)
	return j
}

// Append links a new event to the latest one. The data map is copied.
func (j *Journal) Append(kind Kind, round int, player string, data map[string]string) (Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.events) == 0 {
		return Event{}, ErrEmptyJournal
	}
	latest := j.events[len(j.events)-1]
	e := Event{
		Index:    latest.Index + 1,
		PrevHash: latest.Hash,
		Kind:     kind,
		Round:    round,
		Player:   player,
		Data:     maps.Clone(data),
	}
	e.Hash = calculateHash(e)
	if err := validateEvent(e, latest); err != nil {
		return Event{}, fmt.Errorf("invalid event: %w", err)
	}
	j.events = append(j.events, e)
	return e, nil
}

// Latest returns the most recent event.
func (j *Journal) Latest() (Event, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.events) == 0 {
		return Event{}, ErrEmptyJournal
	}
	return j.events[len(j.events)-1], nil
}

// ByIndex returns the event at index.
func (j *Journal) ByIndex(index int) (Event, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.events) {
		return Event{}, fmt.Errorf("index %d out of range", index)
	}
	return j.events[index], nil
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.events)
}

// Events returns a copy of the chain.
func (j *Journal) Events() []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// Filter returns the events of the given kind, in order.
func (j *Journal) Filter(kind Kind) []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []Event
	for _, e := range j.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Fingerprint is the hash of the latest event.
func (j *Journal) Fingerprint() string {
	e, err := j.Latest()
	if err != nil {
		return ""
	}
	return e.Hash
}

// Verify checks the genesis event and every link of the chain.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.events) == 0 {
		return ErrEmptyJournal
	}
	genesis := j.events[0]
	if genesis.PrevHash != "0" || genesis.Index != 0 || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis event")
	}
	for i := 1; i < len(j.events); i++ {
		if err := validateEvent(j.events[i], j.events[i-1]); err != nil {
			return fmt.Errorf("event %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateEvent checks index continuity, the previous hash link and the hash
// of current.
func validateEvent(current, previous Event) error {
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

// calculateHash hashes every field of the event but Hash itself. Data is
// marshalled to JSON, which sorts map keys.
func calculateHash(e Event) string {
	dataBytes, _ := json.Marshal(e.Data)
	data := fmt.Sprintf("%d|%s|%s|%d|%s|%s",
		e.Index,
		e.PrevHash,
		e.Kind,
		e.Round,
		e.Player,
		string(dataBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
