package sdk

// Host is the execution environment boundary. The chain (or the mock in
// tests) supplies caller identity, wall-clock time, attached value and the
// ability to move funds into arbitrary external code. The core reads these
// fresh on every call and never caches them across calls.
type Host interface {
	// Log appends one immutable line to the host's event log.
	Log(msg string)
	// Sender returns the identity the current call is authorized as.
	Sender() Address
	// TimestampUnix returns the current block/wall time in unix seconds.
	TimestampUnix() int64
	// TxID identifies the enclosing transaction, for log correlation only.
	TxID() string
	// AttachedValue is the amount the caller attached to the current call.
	AttachedValue() uint64
	// Invoke transfers value to target and runs it with the opaque payload.
	// The attached amount of the enclosing call is forwarded alongside.
	// A non-nil error means the external code rejected the invocation.
	Invoke(target Address, value uint64, payload []byte) error
	// StateSet / StateGet / StateDelete expose the host kv storage.
	// StateGet returns nil when the key is absent.
	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)
}

// singleton host used everywhere
var host Host

// SetHost swaps the active host. Tests install a MockHost here.
func SetHost(h Host) {
	host = h
}

// CurrentHost exposes the active host for callers that need the raw handle.
func CurrentHost() Host {
	return host
}

// Log writes a message to the host log so we can trace contract steps.
// Example payload: sdk.Log("aq|id:abc|by:hive:alice")
func Log(msg string) {
	host.Log(msg)
}

// Sender returns the address of the current transaction sender.
func Sender() Address {
	return host.Sender()
}

// NowUnix returns the host's current unix timestamp.
func NowUnix() int64 {
	return host.TimestampUnix()
}

// TxID returns the current transaction id for event correlation.
func TxID() string {
	return host.TxID()
}

// AttachedValue returns the funds attached to the current call.
func AttachedValue() uint64 {
	return host.AttachedValue()
}

// Invoke asks the host to transfer value and run the target with payload.
func Invoke(target Address, value uint64, payload []byte) error {
	return host.Invoke(target, value, payload)
}

// StateSetObject stores a key/value string pair into host kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	host.StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return host.StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	host.StateDelete(key)
}
