package contract

import "govlock/sdk"

// -----------------------------------------------------------------------------
// Governance Session
// -----------------------------------------------------------------------------
//
// One proposal-and-vote cycle: Idle -> proposal sub-window -> voting
// sub-window -> Idle. Phase membership is purely a function of host time
// against the stored deadlines; there is no explicit transition call.
// Reaching the threshold inside the voting window commits the new owner
// immediately; FinalizeOwner is the explicit path once the window closed.

// StartVoting opens a session. Requires the administrator, no session in
// flight and a non-empty electorate.
func StartVoting() error {
	if err := requireAdmin(); err != nil {
		return err
	}
	s := loadSession()
	if s.VotingActive {
		return reject(ErrInvalidState, "voting session already active")
	}
	members := loadMembers()
	if len(members) == 0 {
		return reject(ErrInvalidState, "electorate is empty")
	}
	now := sdk.NowUnix()
	s.ProposedOwner = ""
	s.VotingActive = true
	s.VotingStart = now
	s.ProposalDeadline = now + ProposalWindowSeconds
	s.VotingEnd = now + VotingWindowSeconds
	s.VoteCount = 0
	s.VoteThreshold = quorumFor(len(members))
	saveSession(s)
	emitVotingStarted(s, sdk.Sender())
	return nil
}

// ProposeOwner nominates the candidate for the running session. Allowed
// once per session, only inside the proposal sub-window, members only.
func ProposeOwner(candidate sdk.Address) error {
	sender, err := requireMember()
	if err != nil {
		return err
	}
	if candidate.IsEmpty() {
		return reject(ErrValidation, "candidate address missing")
	}
	s := loadSession()
	if !s.VotingActive {
		return reject(ErrInvalidState, "no voting session active")
	}
	if !s.ProposedOwner.IsEmpty() {
		return rejectf(ErrInvalidState, "owner %s already proposed this session", s.ProposedOwner.String())
	}
	if sdk.NowUnix() > s.ProposalDeadline {
		return rejectf(ErrPhase, "proposal window closed at %d", s.ProposalDeadline)
	}
	s.ProposedOwner = candidate
	saveSession(s)
	emitOwnerProposed(candidate, sender)
	return nil
}

// VoteForOwner casts the sender's single vote for the active proposal.
// Hitting the threshold commits the handover right away.
func VoteForOwner() error {
	sender, err := requireMember()
	if err != nil {
		return err
	}
	s := loadSession()
	if !s.VotingActive {
		return reject(ErrInvalidState, "no voting session active")
	}
	if s.ProposedOwner.IsEmpty() {
		return reject(ErrInvalidState, "no owner proposed yet")
	}
	now := sdk.NowUnix()
	if now < s.ProposalDeadline {
		return rejectf(ErrPhase, "voting opens at %d", s.ProposalDeadline)
	}
	if now > s.VotingEnd {
		return rejectf(ErrPhase, "voting closed at %d", s.VotingEnd)
	}
	if hasVoteFlag(sender) {
		return rejectf(ErrInvalidState, "member %s already voted", sender.String())
	}
	setVoteFlag(sender)
	s.VoteCount++
	saveSession(s)
	emitVoteCast(sender, s.VoteCount, s.VoteThreshold)
	if s.VoteCount >= s.VoteThreshold {
		commitOwner(s)
	}
	return nil
}

// FinalizeOwner commits the proposed owner once the voting window is over.
// The strict after-window guard stays here; the early-quorum path inside
// VoteForOwner commits through commitOwner directly and never hits it.
func FinalizeOwner() error {
	s := loadSession()
	if !s.VotingActive {
		return reject(ErrInvalidState, "no voting session active")
	}
	if s.ProposedOwner.IsEmpty() {
		return reject(ErrInvalidState, "no owner proposed to finalize")
	}
	if sdk.NowUnix() <= s.VotingEnd {
		return rejectf(ErrPhase, "voting open until %d", s.VotingEnd)
	}
	commitOwner(s)
	return nil
}

// CancelSession is the administrator's escape hatch for a session nobody
// finalized. It resets all per-session state without touching ownership,
// so StartVoting becomes callable again.
func CancelSession() error {
	if err := requireAdmin(); err != nil {
		return err
	}
	s := loadSession()
	if !s.VotingActive {
		return reject(ErrInvalidState, "no voting session active")
	}
	resetSession(s)
	emitSessionReset(sdk.Sender())
	return nil
}

// commitOwner is the single writer of the shared administrator slot. It
// applies the handover, emits the records and resets the session.
func commitOwner(s *VotingSession) {
	old := Administrator()
	next := s.ProposedOwner
	tally := s.VoteCount
	setAdministrator(next)
	emitOwnerChanged(old, next)
	emitFinalized(next, tally)
	resetSession(s)
}

// Session returns a copy of the current session record.
func Session() VotingSession {
	return *loadSession()
}

// HasVoted reports whether the member already voted this session.
func HasVoted(addr sdk.Address) bool {
	return hasVoteFlag(addr)
}
