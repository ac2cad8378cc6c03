////////////////////////////////////////////////////////////////////////////////
// govlock: timelocked admin actions + quorum-voted ownership handover
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"govlock/contract"
	"govlock/sdk"
)

func main() {
	debug := true
	contract.InitState(debug) // true = use MockState
	sdk.InitMockHost()        // enable mock host env
}
