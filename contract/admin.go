package contract

import "govlock/sdk"

// The administrator identity is the one slot both state machines share.
// InitContract seeds it, the governance commit path is the only writer
// afterwards, and the timelock only ever reads it for capability checks.

// InitContract seeds the administrator and the grace period bounds. Zero
// bounds fall back to the defaults. Calling it twice is rejected so a live
// deployment cannot be re-seeded over.
func InitContract(creator sdk.Address, minGrace, maxGrace int64) error {
	if creator.IsEmpty() {
		return reject(ErrValidation, "creator address missing")
	}
	if existing := getState().Get(adminKey()); existing != nil && *existing != "" {
		return reject(ErrInvalidState, "contract already initialized")
	}
	if minGrace == 0 && maxGrace == 0 {
		minGrace = FallbackMinGraceSeconds
		maxGrace = FallbackMaxGraceSeconds
	}
	if minGrace < 0 || maxGrace < 0 {
		return reject(ErrValidation, "grace bounds must be non-negative")
	}
	if minGrace > maxGrace {
		return reject(ErrValidation, "min grace period exceeds max")
	}
	getState().Set(adminKey(), creator.String())
	saveGraceBounds(&GraceBounds{Min: minGrace, Max: maxGrace})
	saveSession(&VotingSession{})
	emitInitialized(creator)
	return nil
}

// Administrator returns the current holder of privileged rights.
func Administrator() sdk.Address {
	ptr := getState().Get(adminKey())
	if ptr == nil {
		return ""
	}
	return sdk.Address(*ptr)
}

// setAdministrator overwrites the shared slot. Only the governance commit
// path calls this.
func setAdministrator(addr sdk.Address) {
	getState().Set(adminKey(), addr.String())
}

// requireAdmin gates every privileged operation on the current sender.
func requireAdmin() error {
	if sdk.Sender() != Administrator() {
		return rejectf(ErrUnauthorized, "caller %s is not the administrator", sdk.Sender().String())
	}
	return nil
}

// requireMember gates vote-only operations on electorate membership.
func requireMember() (sdk.Address, error) {
	sender := sdk.Sender()
	if !hasMemberFlag(sender) {
		return "", rejectf(ErrUnauthorized, "caller %s is not a registered member", sender.String())
	}
	return sender, nil
}

// saveGraceBounds persists the delay bounds pair.
func saveGraceBounds(b *GraceBounds) {
	getState().Set(graceBoundsKey(), string(EncodeGraceBounds(b)))
}

// GraceBoundsConfig returns the configured [min,max] delay bounds.
func GraceBoundsConfig() GraceBounds {
	ptr := getState().Get(graceBoundsKey())
	if ptr == nil || *ptr == "" {
		return GraceBounds{Min: FallbackMinGraceSeconds, Max: FallbackMaxGraceSeconds}
	}
	b, err := DecodeGraceBounds([]byte(*ptr))
	if err != nil {
		return GraceBounds{Min: FallbackMinGraceSeconds, Max: FallbackMaxGraceSeconds}
	}
	return *b
}
