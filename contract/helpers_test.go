package contract_test

import (
	"testing"
	"time"

	"govlock/contract"
	"govlock/sdk"
)

const adminAddress = "hive:rootadmin"

const (
	testMinGrace int64 = 60
	testMaxGrace int64 = 3600
)

// setupContract resets state, installs a fresh mock host and seeds the
// administrator with tight grace bounds so timing tests stay fast.
func setupContract(t *testing.T) *sdk.MockHost {
	t.Helper()
	contract.InitState(true)
	host := sdk.InitMockHost()
	host.Caller = adminAddress
	// move off the epoch so eta arithmetic never brushes zero
	host.Clock.Add(1_000_000 * time.Second)
	if err := contract.InitContract(adminAddress, testMinGrace, testMaxGrace); err != nil {
		t.Fatalf("init contract: %v", err)
	}
	return host
}

// registerMembers adds the given addresses as the electorate, as admin.
func registerMembers(t *testing.T, host *sdk.MockHost, members ...sdk.Address) {
	t.Helper()
	prev := host.Caller
	host.Caller = adminAddress
	for _, m := range members {
		if err := contract.RegisterMember(m); err != nil {
			t.Fatalf("register %s: %v", m, err)
		}
	}
	host.Caller = prev
}

// startSessionWithProposal opens a session as admin, lets proposer nominate
// the candidate and advances the clock into the voting sub-window.
func startSessionWithProposal(t *testing.T, host *sdk.MockHost, proposer sdk.Address, candidate sdk.Address) {
	t.Helper()
	host.Caller = adminAddress
	if err := contract.StartVoting(); err != nil {
		t.Fatalf("start voting: %v", err)
	}
	host.Caller = proposer
	if err := contract.ProposeOwner(candidate); err != nil {
		t.Fatalf("propose owner: %v", err)
	}
	host.Clock.Add(time.Duration(contract.ProposalWindowSeconds) * time.Second)
}

// queueTestAction schedules a plain action as admin and returns its id.
func queueTestAction(t *testing.T, host *sdk.MockHost, sig string, grace int64) contract.ActionID {
	t.Helper()
	prev := host.Caller
	host.Caller = adminAddress
	id, err := contract.Queue(contract.QueueArgs{
		Recipient:   "hive:treasury",
		Value:       100,
		Signature:   sig,
		Payload:     []byte{0x01, 0x02},
		GracePeriod: grace,
	})
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	host.Caller = prev
	return id
}
