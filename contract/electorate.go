package contract

import "govlock/sdk"

// -----------------------------------------------------------------------------
// Electorate Registry
// -----------------------------------------------------------------------------
//
// Ordered list plus per-address flag, kept in lockstep: an address is in
// the list iff its flag is set. Removal swaps with the last entry and pops,
// so order is not preserved after a deregistration. Every membership change
// recomputes the threshold immediately, mid-session included.

// quorumFor is the integer ceil of QuorumPercent applied to the size.
func quorumFor(size int) uint64 {
	return uint64((QuorumPercent*size + 99) / 100)
}

// recomputeThreshold writes the fresh quorum into the session record so the
// next vote (or session start) sees it.
func recomputeThreshold(size int) uint64 {
	s := loadSession()
	s.VoteThreshold = quorumFor(size)
	saveSession(s)
	return s.VoteThreshold
}

// RegisterMember appends an address to the electorate. Administrator only;
// duplicates are rejected. A stale vote flag from an earlier stint is
// scrubbed so the returning member can vote in the running session.
func RegisterMember(addr sdk.Address) error {
	if err := requireAdmin(); err != nil {
		return err
	}
	if addr.IsEmpty() {
		return reject(ErrValidation, "member address missing")
	}
	if hasMemberFlag(addr) {
		return rejectf(ErrInvalidState, "member %s already registered", addr.String())
	}
	members := append(loadMembers(), addr)
	saveMembers(members)
	setMemberFlag(addr)
	clearVoteFlag(addr)
	threshold := recomputeThreshold(len(members))
	emitMemberRegistered(addr, len(members), threshold)
	return nil
}

// DeregisterMember removes an address via swap-and-pop. The member's vote
// flag and the session tally stay untouched: a cast vote keeps counting
// until the session resets.
func DeregisterMember(addr sdk.Address) error {
	if err := requireAdmin(); err != nil {
		return err
	}
	if !hasMemberFlag(addr) {
		return rejectf(ErrNotFound, "member %s not registered", addr.String())
	}
	members := loadMembers()
	for i, m := range members {
		if m == addr {
			members[i] = members[len(members)-1]
			members = members[:len(members)-1]
			break
		}
	}
	saveMembers(members)
	clearMemberFlag(addr)
	threshold := recomputeThreshold(len(members))
	emitMemberDeregistered(addr, len(members), threshold)
	return nil
}

// IsRegistered is a pure membership lookup.
func IsRegistered(addr sdk.Address) bool {
	return hasMemberFlag(addr)
}

// Members returns a copy of the ordered electorate list.
func Members() []sdk.Address {
	return append([]sdk.Address(nil), loadMembers()...)
}

// ElectorateSize returns the current member count.
func ElectorateSize() int {
	return len(loadMembers())
}
