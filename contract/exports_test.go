package contract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govlock/contract"
)

func strptr(s string) *string { return &s }

// TestQueueActionPayload drives the JSON entrypoint end to end.
func TestQueueActionPayload(t *testing.T) {
	host := setupContract(t)

	res := contract.QueueAction(strptr(`{"recipient":"hive:treasury","value":100,"sig":"release()","payload":"3q0=","grace":60}`))
	require.NotNil(t, res)

	var resp contract.CallResponse
	require.NoError(t, resp.UnmarshalJSON([]byte(*res)))
	require.True(t, resp.OK, "queue payload should succeed: %s", resp.Details)
	require.NotEmpty(t, resp.ActionID)

	id, err := contract.ActionIDFromString(resp.ActionID)
	require.NoError(t, err)
	act := contract.GetAction(id)
	require.NotNil(t, act)
	assert.Equal(t, uint64(100), act.Value)
	assert.Equal(t, []byte{0xde, 0xad}, act.Payload, "payload travels base64 on the wire")

	// and the id is executable through the payload layer too
	host.Clock.Add(60 * time.Second)
	res = contract.ExecuteAction(strptr(resp.ActionID))
	var execResp contract.CallResponse
	require.NoError(t, execResp.UnmarshalJSON([]byte(*res)))
	assert.True(t, execResp.OK, execResp.Details)
}

// TestQueueActionPayloadRejections: malformed payloads answer ok=false and
// mutate nothing.
func TestQueueActionPayloadRejections(t *testing.T) {
	host := setupContract(t)
	before := len(host.LogLines)

	for _, payload := range []*string{nil, strptr(""), strptr("{broken"), strptr(`{"grace":1}`)} {
		res := contract.QueueAction(payload)
		require.NotNil(t, res)
		var resp contract.CallResponse
		require.NoError(t, resp.UnmarshalJSON([]byte(*res)))
		assert.False(t, resp.OK)
		assert.NotEmpty(t, resp.Details)
	}
	assert.Equal(t, before, len(host.LogLines), "rejected calls must not emit events")
}

// TestGetSessionInfoPayload reads the session view through the wire shape.
func TestGetSessionInfoPayload(t *testing.T) {
	host := setupContract(t)
	registerMembers(t, host, "hive:m1", "hive:m2", "hive:m3")
	host.Caller = adminAddress
	require.NoError(t, contract.StartVoting())

	res := contract.GetSessionInfo()
	require.NotNil(t, res)

	var view contract.SessionView
	require.NoError(t, view.UnmarshalJSON([]byte(*res)))
	assert.True(t, view.VotingActive)
	assert.Equal(t, uint64(2), view.VoteThreshold)
	assert.Equal(t, uint64(3), view.ElectorateSize)
	assert.Equal(t, adminAddress, view.Administrator)
	assert.Less(t, view.ProposalDeadline, view.VotingEnd, "P1 < P2 must hold")
}

// TestCancelActionPayload covers the id-payload path including bad ids.
func TestCancelActionPayload(t *testing.T) {
	host := setupContract(t)
	id := queueTestAction(t, host, "gone()", testMinGrace)

	res := contract.CancelAction(strptr("not-hex"))
	var resp contract.CallResponse
	require.NoError(t, resp.UnmarshalJSON([]byte(*res)))
	assert.False(t, resp.OK)

	res = contract.CancelAction(strptr(id.String()))
	require.NoError(t, resp.UnmarshalJSON([]byte(*res)))
	assert.True(t, resp.OK, resp.Details)
	assert.Nil(t, contract.GetAction(id))
}
