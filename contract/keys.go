package contract

import "govlock/sdk"

// singleByteKey covers the singleton records (admin, bounds, session, list).
func singleByteKey(prefix byte) string {
	return string([]byte{prefix})
}

// adminKey stores the administrator address under 0x01.
func adminKey() string {
	return singleByteKey(kAdmin)
}

// graceBoundsKey stores the encoded delay bounds under 0x02.
func graceBoundsKey() string {
	return singleByteKey(kGraceBounds)
}

// sessionKey stores the encoded voting session under 0x03.
func sessionKey() string {
	return singleByteKey(kSession)
}

// electorateKey stores the encoded ordered member list under 0x04.
func electorateKey() string {
	return singleByteKey(kElectorate)
}

// addrKey mixes a prefix with the raw address bytes so flags for different
// concerns never collide in the flat host kv.
func addrKey(prefix byte, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, prefix)
	buf = append(buf, addrStr...)
	return string(buf)
}

// memberFlagKey flags registered electorate members.
func memberFlagKey(addr sdk.Address) string {
	return addrKey(kMemberFlag, addr)
}

// voteFlagKey flags members that voted in the running session.
func voteFlagKey(addr sdk.Address) string {
	return addrKey(kVoteFlag, addr)
}

// actionKey files a ScheduledAction under its 32 byte digest.
func actionKey(id ActionID) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kAction)
	buf = append(buf, id[:]...)
	return string(buf)
}
