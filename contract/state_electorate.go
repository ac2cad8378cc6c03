package contract

import "govlock/sdk"

// saveMembers persists the ordered list; flags are maintained separately.
func saveMembers(members []sdk.Address) {
	getState().Set(electorateKey(), string(EncodeMembers(members)))
}

// loadMembers returns the ordered electorate list, empty when unset.
func loadMembers() []sdk.Address {
	ptr := getState().Get(electorateKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	members, err := DecodeMembers([]byte(*ptr))
	if err != nil {
		return nil
	}
	return members
}

// setMemberFlag marks an address as registered for O(1) lookups.
func setMemberFlag(addr sdk.Address) {
	getState().Set(memberFlagKey(addr), "1")
}

// clearMemberFlag removes the registration marker.
func clearMemberFlag(addr sdk.Address) {
	getState().Delete(memberFlagKey(addr))
}

// hasMemberFlag reports whether an address holds the registration marker.
func hasMemberFlag(addr sdk.Address) bool {
	existing := getState().Get(memberFlagKey(addr))
	return existing != nil && *existing != ""
}

// setVoteFlag marks an address as having voted in the running session.
func setVoteFlag(addr sdk.Address) {
	getState().Set(voteFlagKey(addr), "1")
}

// clearVoteFlag removes the vote marker.
func clearVoteFlag(addr sdk.Address) {
	getState().Delete(voteFlagKey(addr))
}

// hasVoteFlag reports whether an address already voted this session.
func hasVoteFlag(addr sdk.Address) bool {
	existing := getState().Get(voteFlagKey(addr))
	return existing != nil && *existing != ""
}
