package receipt

import (
	"encoding/json"
	"os"
)

// Store persists the receipt list. Upsert is the only mutation besides the
// bulk Clear; records are never deleted individually.
type Store interface {
	// List returns all receipts, most recently upserted first.
	List() ([]Receipt, error)
	// Upsert inserts or whole-record-replaces by id. A non-empty note on
	// the existing record survives when the incoming record carries none.
	Upsert(r Receipt) error
	// Clear removes every receipt. Explicit user action only.
	Clear() error
}

// JSONStore is a file-backed Store. Every operation re-reads the full
// persisted collection; there is no in-memory cache to invalidate. Load is
// lenient: malformed entries are dropped and an unreadable file degrades to
// an empty list, so a corrupt history can never take the UI down.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed receipt store at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) List() ([]Receipt, error) {
	return s.load(), nil
}

func (s *JSONStore) Upsert(r Receipt) error {
	return s.save(upsert(s.load(), r))
}

func (s *JSONStore) Clear() error {
	return s.save(nil)
}

// load reads and validates receipts.json. All failure modes (missing file,
// invalid JSON, junk entries) yield what could be salvaged.
func (s *JSONStore) load() []Receipt {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	out := make([]Receipt, 0, len(raw))
	for _, m := range raw {
		var r Receipt
		if err := json.Unmarshal(m, &r); err != nil {
			continue
		}
		if !r.valid() {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *JSONStore) save(receipts []Receipt) error {
	if receipts == nil {
		receipts = []Receipt{}
	}
	data, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	receipts []Receipt
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) List() ([]Receipt, error) {
	out := make([]Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out, nil
}

func (s *MemStore) Upsert(r Receipt) error {
	s.receipts = upsert(s.receipts, r)
	return nil
}

func (s *MemStore) Clear() error {
	s.receipts = nil
	return nil
}

// upsert replaces in place when the id exists (preserving a prior non-empty
// note if the incoming record has none), otherwise prepends so index 0 is
// always the newest record.
func upsert(receipts []Receipt, r Receipt) []Receipt {
	for i, existing := range receipts {
		if existing.ID != r.ID {
			continue
		}
		if r.Note == "" && existing.Note != "" {
			r.Note = existing.Note
		}
		receipts[i] = r
		return receipts
	}
	return append([]Receipt{r}, receipts...)
}
