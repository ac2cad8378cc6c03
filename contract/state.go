package contract

import "govlock/sdk"

type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// singleton state used everywhere
var state State

func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = HostState{}
	}
}

func getState() State {
	return state
}

// HostState delegates straight to the host kv storage.
type HostState struct{}

func (HostState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (HostState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (HostState) Delete(key string) {
	sdk.StateDeleteObject(key)
}
