package contract

import (
	"fmt"

	"govlock/sdk"
)

// Event lines are the only channel outside observers have to watch the
// grace window between queue and execute, so every mutation emits one.
// Format follows the short two-letter convention: code|field:value|...

// emitInitialized announces the deployer taking the administrator seat.
func emitInitialized(admin sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"in|by:%s",
		admin.String(),
	))
}

// emitActionQueued carries every declared field so watchers can re-derive
// the id from the log alone.
func emitActionQueued(id ActionID, act *ScheduledAction, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"aq|id:%s|to:%s|val:%d|sig:%s|eta:%d|by:%s",
		id.String(),
		act.Recipient.String(),
		act.Value,
		act.Signature,
		act.ExecuteAt,
		by.String(),
	))
}

// emitActionCancelled signals a freed slot before the delay ran out.
func emitActionCancelled(id ActionID, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"ac|id:%s|by:%s",
		id.String(),
		by.String(),
	))
}

// emitActionExecuted confirms the external invocation went through.
func emitActionExecuted(id ActionID, act *ScheduledAction, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"ax|id:%s|to:%s|val:%d|by:%s",
		id.String(),
		act.Recipient.String(),
		act.Value,
		by.String(),
	))
}

// emitGraceBoundsUpdated spells out both bounds so auditors can track flips.
func emitGraceBoundsUpdated(b *GraceBounds, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"gp|min:%d|max:%d|by:%s",
		b.Min,
		b.Max,
		by.String(),
	))
}

// emitMemberRegistered includes the new size and threshold so quorum math
// can be replayed from logs only.
func emitMemberRegistered(addr sdk.Address, size int, threshold uint64) {
	sdk.Log(fmt.Sprintf(
		"mr|addr:%s|n:%d|thr:%d",
		addr.String(),
		size,
		threshold,
	))
}

// emitMemberDeregistered mirrors the register line for seat removals.
func emitMemberDeregistered(addr sdk.Address, size int, threshold uint64) {
	sdk.Log(fmt.Sprintf(
		"md|addr:%s|n:%d|thr:%d",
		addr.String(),
		size,
		threshold,
	))
}

// emitVotingStarted pins the whole window layout into one line.
func emitVotingStarted(s *VotingSession, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"vs|start:%d|pd:%d|end:%d|thr:%d|by:%s",
		s.VotingStart,
		s.ProposalDeadline,
		s.VotingEnd,
		s.VoteThreshold,
		by.String(),
	))
}

// emitOwnerProposed names the candidate the session will vote over.
func emitOwnerProposed(candidate sdk.Address, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"po|cand:%s|by:%s",
		candidate.String(),
		by.String(),
	))
}

// emitVoteCast includes the running tally against the threshold.
func emitVoteCast(by sdk.Address, tally uint64, threshold uint64) {
	sdk.Log(fmt.Sprintf(
		"vc|by:%s|n:%d|thr:%d",
		by.String(),
		tally,
		threshold,
	))
}

// emitOwnerChanged is the line monitoring infra alerts on.
func emitOwnerChanged(old sdk.Address, next sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"oc|old:%s|new:%s",
		old.String(),
		next.String(),
	))
}

// emitFinalized closes the session bookkeeping with the final tally.
func emitFinalized(next sdk.Address, tally uint64) {
	sdk.Log(fmt.Sprintf(
		"vf|new:%s|votes:%d",
		next.String(),
		tally,
	))
}

// emitSessionReset flags an administrator bailing out of a stuck session.
func emitSessionReset(by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"vr|by:%s",
		by.String(),
	))
}
