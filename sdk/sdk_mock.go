package sdk

import (
	"fmt"

	"github.com/benbjohnson/clock"
)

// Invocation records one external call requested through the mock host.
type Invocation struct {
	Target  Address
	Value   uint64
	Payload []byte
}

// MockHost is the scriptable stand-in for the chain environment. Tests set
// the caller and attached value per call, advance Clock to cross phase
// windows, and mark targets as failing to exercise external-call errors.
type MockHost struct {
	Clock    *clock.Mock
	Caller   Address
	Tx       string
	Attached uint64

	// FailTargets maps target addresses to the failure reason their
	// invocation should report. Empty map means every invoke succeeds.
	FailTargets map[Address]string

	LogLines    []string
	Invocations []Invocation

	kv map[string]string

	// Verbose echoes log lines to stdout while debugging tests.
	Verbose bool
}

// NewMockHost builds a mock host with a controllable clock at the epoch.
func NewMockHost() *MockHost {
	return &MockHost{
		Clock:       clock.NewMock(),
		Caller:      "mock:deployer",
		Tx:          "tx-0",
		FailTargets: map[Address]string{},
		kv:          map[string]string{},
	}
}

// InitMockHost installs a fresh mock host as the active one and returns it.
func InitMockHost() *MockHost {
	m := NewMockHost()
	SetHost(m)
	return m
}

func (m *MockHost) Log(msg string) {
	m.LogLines = append(m.LogLines, msg)
	if m.Verbose {
		fmt.Println("SDK log:", msg)
	}
}

func (m *MockHost) Sender() Address {
	return m.Caller
}

func (m *MockHost) TimestampUnix() int64 {
	return m.Clock.Now().Unix()
}

func (m *MockHost) TxID() string {
	return m.Tx
}

func (m *MockHost) AttachedValue() uint64 {
	return m.Attached
}

func (m *MockHost) Invoke(target Address, value uint64, payload []byte) error {
	if reason, ok := m.FailTargets[target]; ok {
		return fmt.Errorf("invoke %s: %s", target.String(), reason)
	}
	m.Invocations = append(m.Invocations, Invocation{
		Target:  target,
		Value:   value,
		Payload: append([]byte(nil), payload...),
	})
	return nil
}

func (m *MockHost) StateSet(key, value string) {
	m.kv[key] = value
}

func (m *MockHost) StateGet(key string) *string {
	val, ok := m.kv[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockHost) StateDelete(key string) {
	delete(m.kv, key)
}
