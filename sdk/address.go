package sdk

// Address is an opaque account identity handed to us by the host.
// The core never inspects it beyond equality and emptiness checks.
type Address string

// String unwraps the underlying text for keys, logs and payloads.
// Example payload: Address("hive:alice").String()
func (a Address) String() string {
	return string(a)
}

// IsEmpty reports whether the address carries no identity at all.
func (a Address) IsEmpty() bool {
	return a == ""
}
