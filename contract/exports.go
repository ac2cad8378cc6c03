package contract

import (
	"github.com/CosmWasm/tinyjson"
)

// -----------------------------------------------------------------------------
// Payload entrypoints
// -----------------------------------------------------------------------------
//
// The host dispatches calls as JSON payload strings; these wrappers decode,
// run the typed operation and answer with a CallResponse. Failures come
// back as ok=false with the reason string, never as a partial mutation.

// strptr keeps the pointer-return plumbing readable.
func strptr(s string) *string { return &s }

// respond serializes a CallResponse, falling back to a raw error blob when
// the writer itself fails (should not happen for these flat structs).
func respond(resp *CallResponse) *string {
	data, err := tinyjson.Marshal(resp)
	if err != nil {
		return strptr(`{"ok":false,"details":"response encoding failed"}`)
	}
	return strptr(string(data))
}

// respondErr maps an operation error onto the wire shape.
func respondErr(err error) *string {
	return respond(&CallResponse{OK: false, Details: err.Error()})
}

// QueueAction decodes QueueArgs and schedules the action.
// Example payload: QueueAction(strptr(`{"recipient":"hive:treasury","value":100,"sig":"release()","grace":7200}`))
func QueueAction(payload *string) *string {
	if payload == nil || *payload == "" {
		return respondErr(reject(ErrValidation, "queue payload missing"))
	}
	var args QueueArgs
	if err := tinyjson.Unmarshal([]byte(*payload), &args); err != nil {
		return respondErr(reject(ErrValidation, "invalid queue payload"))
	}
	id, err := Queue(args)
	if err != nil {
		return respondErr(err)
	}
	return respond(&CallResponse{OK: true, ActionID: id.String()})
}

// CancelAction takes the hex action id and removes the pending slot.
func CancelAction(payload *string) *string {
	id, err := actionIDFromPayload(payload)
	if err != nil {
		return respondErr(err)
	}
	if err := Cancel(id); err != nil {
		return respondErr(err)
	}
	return respond(&CallResponse{OK: true, ActionID: id.String()})
}

// ExecuteAction takes the hex action id and runs the matured action.
func ExecuteAction(payload *string) *string {
	id, err := actionIDFromPayload(payload)
	if err != nil {
		return respondErr(err)
	}
	if err := Execute(id); err != nil {
		return respondErr(err)
	}
	return respond(&CallResponse{OK: true, ActionID: id.String()})
}

// GetActionInfo answers with the stored action under the hex id.
func GetActionInfo(payload *string) *string {
	id, err := actionIDFromPayload(payload)
	if err != nil {
		return respondErr(err)
	}
	act := GetAction(id)
	if act == nil {
		return respondErr(rejectf(ErrNotFound, "no action queued under %s", id.String()))
	}
	view := ActionView{
		ID:        id.String(),
		Recipient: act.Recipient.String(),
		Value:     act.Value,
		Signature: act.Signature,
		Payload:   act.Payload,
		ExecuteAt: act.ExecuteAt,
		Executed:  act.Executed,
	}
	data, merr := tinyjson.Marshal(view)
	if merr != nil {
		return respondErr(reject(ErrInvalidState, "response encoding failed"))
	}
	return strptr(string(data))
}

// GetSessionInfo answers with the current session plus the shared bits the
// session reads (administrator, electorate size).
func GetSessionInfo() *string {
	s := Session()
	view := SessionView{
		ProposedOwner:    s.ProposedOwner.String(),
		VotingActive:     s.VotingActive,
		VotingStart:      s.VotingStart,
		ProposalDeadline: s.ProposalDeadline,
		VotingEnd:        s.VotingEnd,
		VoteCount:        s.VoteCount,
		VoteThreshold:    s.VoteThreshold,
		ElectorateSize:   uint64(ElectorateSize()),
		Administrator:    Administrator().String(),
	}
	data, err := tinyjson.Marshal(view)
	if err != nil {
		return respondErr(reject(ErrInvalidState, "response encoding failed"))
	}
	return strptr(string(data))
}

// actionIDFromPayload parses the bare hex id payload shared by the
// cancel/execute/get entrypoints.
func actionIDFromPayload(payload *string) (ActionID, error) {
	var zero ActionID
	if payload == nil || *payload == "" {
		return zero, reject(ErrValidation, "action id missing")
	}
	id, err := ActionIDFromString(*payload)
	if err != nil {
		return zero, reject(ErrValidation, "invalid action id")
	}
	return id, nil
}
