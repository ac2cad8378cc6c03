package contract

import (
	"sort"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// MockState keeps the kv map in memory so tests stay hermetic. Snapshot and
// Restore serialize the map for debugging dumps or cross-test fixtures.
type MockState struct {
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{
		db: make(map[string]string),
	}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys the store currently holds.
func (m *MockState) Len() int {
	return len(m.db)
}

// Snapshot serializes the full map as JSON with sorted keys so diffs of two
// snapshots line up.
func (m *MockState) Snapshot() ([]byte, error) {
	keys := make([]string, 0, len(m.db))
	for k := range m.db {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := jwriter.Writer{}
	w.RawByte('{')
	for i, k := range keys {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(k)
		w.RawByte(':')
		w.String(m.db[k])
	}
	w.RawByte('}')
	return w.Buffer.BuildBytes(), w.Error
}

// Restore replaces the map with the contents of an earlier Snapshot.
func (m *MockState) Restore(data []byte) error {
	in := jlexer.Lexer{Data: data}
	db := make(map[string]string)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		db[key] = in.String()
		in.WantComma()
	}
	in.Delim('}')
	if err := in.Error(); err != nil {
		return err
	}
	m.db = db
	return nil
}
