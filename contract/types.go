package contract

import (
	"encoding/hex"
	"errors"

	"govlock/sdk"
)

// ActionID is the keccak-256 digest of a scheduled action's declared
// fields. It doubles as the storage lookup key.
type ActionID [32]byte

// String renders the id as lowercase hex for logs, payloads and keys.
// Example payload: id.String()
func (id ActionID) String() string {
	return hex.EncodeToString(id[:])
}

// ActionIDFromString parses the hex form back into an id.
// Example payload: ActionIDFromString("3f9a...")
func ActionIDFromString(s string) (ActionID, error) {
	var id ActionID
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, err
	}
	if len(raw) != len(id) {
		return id, errors.New("action id must be 32 bytes")
	}
	copy(id[:], raw)
	return id, nil
}

// ScheduledAction is one pending administrative action sitting out its
// grace period. Payload stays an opaque blob; Signature is informational.
type ScheduledAction struct {
	Recipient sdk.Address
	Value     uint64
	Signature string
	Payload   []byte
	ExecuteAt int64
	Executed  bool
}

// GraceBounds are the configured [min,max] limits for queue delays.
type GraceBounds struct {
	Min int64
	Max int64
}

// VotingSession is the state of one proposal-and-vote cycle. The vote
// threshold lives here but outlasts sessions: membership changes recompute
// it even while no session runs, so StartVoting always sees a fresh value.
type VotingSession struct {
	ProposedOwner    sdk.Address
	VotingActive     bool
	VotingStart      int64
	ProposalDeadline int64
	VotingEnd        int64
	VoteCount        uint64
	VoteThreshold    uint64
}

// QueueArgs is the payload for queueing a timelocked action.
//
//tinyjson:json
type QueueArgs struct {
	Recipient   sdk.Address `json:"recipient"`
	Value       uint64      `json:"value"`
	Signature   string      `json:"sig"`
	Payload     []byte      `json:"payload"`
	GracePeriod int64       `json:"grace"`
}

// CallResponse is the JSON reply shape for mutating entrypoints.
//
//tinyjson:json
type CallResponse struct {
	OK       bool   `json:"ok"`
	Details  string `json:"details,omitempty"`
	ActionID string `json:"action_id,omitempty"`
}

// ActionView is the JSON reply shape for action lookups.
//
//tinyjson:json
type ActionView struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Value     uint64 `json:"value"`
	Signature string `json:"sig"`
	Payload   []byte `json:"payload"`
	ExecuteAt int64  `json:"execute_at"`
	Executed  bool   `json:"executed"`
}

// SessionView is the JSON reply shape for session lookups.
//
//tinyjson:json
type SessionView struct {
	ProposedOwner    string `json:"proposed_owner"`
	VotingActive     bool   `json:"voting_active"`
	VotingStart      int64  `json:"voting_start"`
	ProposalDeadline int64  `json:"proposal_deadline"`
	VotingEnd        int64  `json:"voting_end"`
	VoteCount        uint64 `json:"vote_count"`
	VoteThreshold    uint64 `json:"vote_threshold"`
	ElectorateSize   uint64 `json:"electorate_size"`
	Administrator    string `json:"administrator"`
}
