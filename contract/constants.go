package contract

// -----------------------------------------------------------------------------
// Voting Session Windows
// -----------------------------------------------------------------------------

const (
	// ProposalWindowSeconds is the sub-window after StartVoting during
	// which a candidate may be proposed (P1).
	ProposalWindowSeconds int64 = 60 * 60 * 24
	// VotingWindowSeconds spans the whole session from start to voting end
	// (P2). Votes are accepted between the proposal deadline and this end.
	VotingWindowSeconds int64 = 60 * 60 * 24 * 3
)

// -----------------------------------------------------------------------------
// Quorum
// -----------------------------------------------------------------------------

// QuorumPercent is the share of the electorate (rounded up) that must vote
// for a proposed owner before the handover commits.
const QuorumPercent = 51

// -----------------------------------------------------------------------------
// Grace Period Fallbacks
// -----------------------------------------------------------------------------

const (
	// FallbackMinGraceSeconds is the lower execution delay bound when the
	// deployer passes zero config.
	FallbackMinGraceSeconds int64 = 60 * 60 * 2
	// FallbackMaxGraceSeconds caps how far out an action can be scheduled.
	FallbackMaxGraceSeconds int64 = 60 * 60 * 24 * 30
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kAdmin stores the current administrator address.
	kAdmin byte = 0x01
	// kGraceBounds stores the encoded [min,max] execution delay bounds.
	kGraceBounds byte = 0x02
	// kSession stores the encoded voting session record.
	kSession byte = 0x03
	// kElectorate stores the encoded ordered member list.
	kElectorate byte = 0x04
	// kMemberFlag flags registered members for O(1) membership checks.
	kMemberFlag byte = 0x10
	// kVoteFlag flags members that already voted in the running session.
	kVoteFlag byte = 0x11
	// kAction houses encoded ScheduledAction records keyed by action id.
	kAction byte = 0x20
)
