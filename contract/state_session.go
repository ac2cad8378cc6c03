package contract

// saveSession writes the session singleton back to storage.
func saveSession(s *VotingSession) {
	getState().Set(sessionKey(), string(EncodeSession(s)))
}

// loadSession returns the stored session, or a zero value when none was
// ever written. The zero value doubles as the idle state.
func loadSession() *VotingSession {
	ptr := getState().Get(sessionKey())
	if ptr == nil || *ptr == "" {
		return &VotingSession{}
	}
	s, err := DecodeSession([]byte(*ptr))
	if err != nil {
		return &VotingSession{}
	}
	return s
}

// resetSession clears every per-session field but keeps the threshold, which
// tracks the electorate and not the session. Vote flags are cleared for the
// current member list only; flags of members deregistered mid-session are
// scrubbed lazily when the address registers again.
func resetSession(s *VotingSession) {
	for _, m := range loadMembers() {
		clearVoteFlag(m)
	}
	s.ProposedOwner = ""
	s.VotingActive = false
	s.VotingStart = 0
	s.ProposalDeadline = 0
	s.VotingEnd = 0
	s.VoteCount = 0
	saveSession(s)
}
