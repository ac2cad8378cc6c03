package contract_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govlock/contract"
	"govlock/sdk"
)

// TestStartVotingGuards rejects outsiders, empty electorates and restarts.
func TestStartVotingGuards(t *testing.T) {
	host := setupContract(t)

	host.Caller = "hive:outsider"
	assert.ErrorIs(t, contract.StartVoting(), contract.ErrUnauthorized)

	host.Caller = adminAddress
	assert.ErrorIs(t, contract.StartVoting(), contract.ErrInvalidState, "empty electorate must block sessions")

	registerMembers(t, host, "hive:m1")
	require.NoError(t, contract.StartVoting())
	assert.ErrorIs(t, contract.StartVoting(), contract.ErrInvalidState, "second session must be rejected")
}

// TestThresholdRecompute checks ceil(51%) at the documented edges.
func TestThresholdRecompute(t *testing.T) {
	host := setupContract(t)

	registerMembers(t, host, "hive:m1")
	assert.Equal(t, uint64(1), contract.Session().VoteThreshold, "0->1 member means threshold 1")

	registerMembers(t, host, "hive:m2", "hive:m3")
	assert.Equal(t, uint64(2), contract.Session().VoteThreshold, "ceil(0.51*3)=2")

	for i := 4; i <= 100; i++ {
		registerMembers(t, host, sdk.Address(fmt.Sprintf("hive:bulk%03d", i)))
	}
	assert.Equal(t, 100, contract.ElectorateSize())
	assert.Equal(t, uint64(51), contract.Session().VoteThreshold, "exactly divisible size must not round up")

	require.NoError(t, contract.DeregisterMember("hive:m2"))
	assert.Equal(t, uint64(51), contract.Session().VoteThreshold, "ceil(0.51*99)=51")
}

// TestElectorateRegistry covers duplicates, unknown removals and the flag
// and list staying in lockstep through swap-and-pop.
func TestElectorateRegistry(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")

	err := contract.RegisterMember("hive:m2")
	assert.ErrorIs(t, err, contract.ErrInvalidState)

	assert.ErrorIs(t, contract.DeregisterMember("hive:ghost"), contract.ErrNotFound)

	require.NoError(t, contract.DeregisterMember("hive:m1"))
	assert.False(t, contract.IsRegistered("hive:m1"))
	assert.Equal(t, 2, contract.ElectorateSize())
	for _, m := range contract.Members() {
		assert.True(t, contract.IsRegistered(m), "list and flag must agree")
	}

	host.Caller = "hive:m2"
	assert.ErrorIs(t, contract.RegisterMember("hive:m4"), contract.ErrUnauthorized)
}

// TestProposeOwnerGuards covers the proposal sub-window and one-shot rule.
func TestProposeOwnerGuards(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2")

	host.Caller = "hive:m1"
	assert.ErrorIs(t, contract.ProposeOwner("hive:newboss"), contract.ErrInvalidState, "no session yet")

	host.Caller = adminAddress
	require.NoError(t, contract.StartVoting())

	host.Caller = "hive:outsider"
	assert.ErrorIs(t, contract.ProposeOwner("hive:newboss"), contract.ErrUnauthorized)

	host.Caller = "hive:m1"
	require.NoError(t, contract.ProposeOwner("hive:newboss"))
	assert.ErrorIs(t, contract.ProposeOwner("hive:other"), contract.ErrInvalidState, "one proposal per session")
}

// TestProposeAfterDeadlineFails pins the phase boundary.
func TestProposeAfterDeadlineFails(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1")
	require.NoError(t, contract.StartVoting())

	host.Clock.Add(time.Duration(contract.ProposalWindowSeconds+1) * time.Second)
	host.Caller = "hive:m1"
	assert.ErrorIs(t, contract.ProposeOwner("hive:newboss"), contract.ErrPhase)
}

// TestVoteGuards: membership, phase window, missing proposal, double vote.
func TestVoteGuards(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")

	host.Caller = adminAddress
	require.NoError(t, contract.StartVoting())

	host.Caller = "hive:m1"
	assert.ErrorIs(t, contract.VoteForOwner(), contract.ErrInvalidState, "no proposal yet")

	require.NoError(t, contract.ProposeOwner("hive:newboss"))
	assert.ErrorIs(t, contract.VoteForOwner(), contract.ErrPhase, "voting opens after proposal deadline")

	host.Clock.Add(time.Duration(contract.ProposalWindowSeconds) * time.Second)

	host.Caller = "hive:outsider"
	assert.ErrorIs(t, contract.VoteForOwner(), contract.ErrUnauthorized)

	host.Caller = "hive:m1"
	require.NoError(t, contract.VoteForOwner())
	assert.ErrorIs(t, contract.VoteForOwner(), contract.ErrInvalidState, "double vote must fail")
	assert.True(t, contract.HasVoted("hive:m1"))
}

// TestQuorumHandover is end-to-end scenario A: 3 members, threshold 2, the
// second vote commits the handover and resets the session.
func TestQuorumHandover(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")
	startSessionWithProposal(t, host, "hive:m1", "hive:newboss")

	host.Caller = "hive:m1"
	require.NoError(t, contract.VoteForOwner())
	assert.Equal(t, adminAddress, contract.Administrator().String(), "one vote below quorum changes nothing")

	host.Caller = "hive:m2"
	require.NoError(t, contract.VoteForOwner())
	assert.Equal(t, "hive:newboss", contract.Administrator().String())

	s := contract.Session()
	assert.False(t, s.VotingActive)
	assert.True(t, s.ProposedOwner.IsEmpty())
	assert.Equal(t, uint64(0), s.VoteCount)
	for _, m := range []sdk.Address{"hive:m1", "hive:m2", "hive:m3"} {
		assert.False(t, contract.HasVoted(m), "vote flags must clear on reset")
	}
	assert.Equal(t, 3, contract.ElectorateSize(), "electorate persists across sessions")

	// the old admin lost the timelock capability with the seat
	host.Caller = adminAddress
	_, err := contract.Queue(contract.QueueArgs{Recipient: "hive:a", GracePeriod: testMinGrace})
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

// TestFinalizeAfterWindow is end-to-end scenario B: below quorum, explicit
// finalize fails inside the window and succeeds after it.
func TestFinalizeAfterWindow(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")
	startSessionWithProposal(t, host, "hive:m1", "hive:newboss")

	host.Caller = "hive:m1"
	require.NoError(t, contract.VoteForOwner())

	assert.ErrorIs(t, contract.FinalizeOwner(), contract.ErrPhase, "window still open")

	host.Clock.Add(time.Duration(contract.VotingWindowSeconds) * time.Second)
	require.NoError(t, contract.FinalizeOwner())
	assert.Equal(t, "hive:newboss", contract.Administrator().String())
	assert.False(t, contract.Session().VotingActive)
}

// TestFinalizeWithoutProposal cannot commit an empty candidate.
func TestFinalizeWithoutProposal(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1")
	require.NoError(t, contract.StartVoting())

	host.Clock.Add(time.Duration(contract.VotingWindowSeconds+1) * time.Second)
	assert.ErrorIs(t, contract.FinalizeOwner(), contract.ErrInvalidState)
}

// TestDeregisterKeepsTally: a cast vote outlives the voter's seat, while
// the threshold tracks the shrunken electorate independently.
func TestDeregisterKeepsTally(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")
	startSessionWithProposal(t, host, "hive:m1", "hive:newboss")

	host.Caller = "hive:m1"
	require.NoError(t, contract.VoteForOwner())
	require.Equal(t, uint64(1), contract.Session().VoteCount)

	host.Caller = adminAddress
	require.NoError(t, contract.DeregisterMember("hive:m1"))

	s := contract.Session()
	assert.Equal(t, uint64(1), s.VoteCount, "stale vote keeps counting until reset")
	assert.Equal(t, uint64(2), s.VoteThreshold, "ceil(0.51*2)=2 after the seat vanished")
}

// TestStuckSessionAndCancel: an unfinalized session blocks restarts until
// the administrator cancels it, and cancelling never moves ownership.
func TestStuckSessionAndCancel(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")
	startSessionWithProposal(t, host, "hive:m1", "hive:newboss")

	host.Clock.Add(time.Duration(contract.VotingWindowSeconds+1) * time.Second)

	host.Caller = adminAddress
	assert.ErrorIs(t, contract.StartVoting(), contract.ErrInvalidState, "stuck session must block a new one")

	host.Caller = "hive:m1"
	assert.ErrorIs(t, contract.CancelSession(), contract.ErrUnauthorized)

	host.Caller = adminAddress
	require.NoError(t, contract.CancelSession())
	assert.Equal(t, adminAddress, contract.Administrator().String(), "cancel must not hand over ownership")
	assert.ErrorIs(t, contract.CancelSession(), contract.ErrInvalidState, "nothing left to cancel")

	require.NoError(t, contract.StartVoting())
}

// TestEarlyQuorumSkipsWindowGuard: quorum inside the voting window commits
// right away even though the explicit finalize guard would still reject.
func TestEarlyQuorumSkipsWindowGuard(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2")
	startSessionWithProposal(t, host, "hive:m1", "hive:newboss")

	host.Caller = "hive:m1"
	require.NoError(t, contract.VoteForOwner())

	host.Caller = "hive:m2"
	require.NoError(t, contract.VoteForOwner(), "the quorum-reaching vote must not trip the after-window guard")
	assert.Equal(t, "hive:newboss", contract.Administrator().String())
}
