package contract

import "govlock/sdk"

// -----------------------------------------------------------------------------
// Timelock Queue
// -----------------------------------------------------------------------------
//
// Every privileged action passes through here: queue it, wait out the grace
// period in public view, then execute. Nothing is escrowed at queue time —
// the delay is enforced purely by comparing ExecuteAt against host time, so
// the security value hangs on observers watching the aq/ac/ax log lines.

// Queue schedules an administrative action after the grace period. The id
// is derived from the declared fields; an identical pending action is
// rejected instead of silently overwritten.
// Example payload: Queue(QueueArgs{Recipient: "hive:treasury", Value: 100, Signature: "release()", GracePeriod: 7200})
func Queue(args QueueArgs) (ActionID, error) {
	var zero ActionID
	if err := requireAdmin(); err != nil {
		return zero, err
	}
	bounds := GraceBoundsConfig()
	if args.GracePeriod < bounds.Min || args.GracePeriod > bounds.Max {
		return zero, rejectf(ErrValidation, "grace period %d outside bounds [%d,%d]", args.GracePeriod, bounds.Min, bounds.Max)
	}
	act := &ScheduledAction{
		Recipient: args.Recipient,
		Value:     args.Value,
		Signature: args.Signature,
		Payload:   args.Payload,
		ExecuteAt: sdk.NowUnix() + args.GracePeriod,
	}
	id := DeriveActionID(act)
	existing, err := loadAction(id)
	if err != nil {
		return zero, err
	}
	if existing != nil {
		return zero, rejectf(ErrInvalidState, "identical action %s already queued", id.String())
	}
	saveAction(id, act)
	emitActionQueued(id, act, sdk.Sender())
	return id, nil
}

// Cancel removes a pending action; the slot is cleared so later calls on
// the id see "does not exist". Executed actions cannot be cancelled.
func Cancel(id ActionID) error {
	if err := requireAdmin(); err != nil {
		return err
	}
	act, err := loadAction(id)
	if err != nil {
		return err
	}
	if act == nil {
		return rejectf(ErrNotFound, "no action queued under %s", id.String())
	}
	if act.Executed {
		return rejectf(ErrInvalidState, "action %s already executed", id.String())
	}
	deleteAction(id)
	emitActionCancelled(id, sdk.Sender())
	return nil
}

// Execute runs a matured action through the host. A failing external call
// leaves the action pending so it stays re-executable; success flips the
// record into its terminal executed state.
func Execute(id ActionID) error {
	if err := requireAdmin(); err != nil {
		return err
	}
	act, err := loadAction(id)
	if err != nil {
		return err
	}
	if act == nil {
		return rejectf(ErrNotFound, "no action queued under %s", id.String())
	}
	if act.Executed {
		return rejectf(ErrInvalidState, "action %s already executed", id.String())
	}
	if sdk.NowUnix() < act.ExecuteAt {
		return rejectf(ErrPhase, "action %s not executable before %d", id.String(), act.ExecuteAt)
	}
	// Control leaves the core here. The stored value plus the attached
	// amount of this call travel to the recipient; a reported failure
	// must not leave partial state behind.
	if err := sdk.Invoke(act.Recipient, act.Value+sdk.AttachedValue(), act.Payload); err != nil {
		return rejectf(ErrExternalCall, "invocation of %s rejected: %v", act.Recipient.String(), err)
	}
	act.Executed = true
	saveAction(id, act)
	emitActionExecuted(id, act, sdk.Sender())
	return nil
}

// UpdateGracePeriod adjusts the [min,max] delay bounds. Re-applying the
// current bounds is a valid no-op.
func UpdateGracePeriod(min, max int64) error {
	if err := requireAdmin(); err != nil {
		return err
	}
	if min < 0 || max < 0 {
		return reject(ErrValidation, "grace bounds must be non-negative")
	}
	if min > max {
		return rejectf(ErrValidation, "min grace period %d exceeds max %d", min, max)
	}
	b := &GraceBounds{Min: min, Max: max}
	saveGraceBounds(b)
	emitGraceBoundsUpdated(b, sdk.Sender())
	return nil
}

// GetAction looks up a queued action by id, nil when absent.
func GetAction(id ActionID) *ScheduledAction {
	act, err := loadAction(id)
	if err != nil {
		return nil
	}
	return act
}
