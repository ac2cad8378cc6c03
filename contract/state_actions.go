package contract

// saveAction writes the encoded record under its digest key.
func saveAction(id ActionID, act *ScheduledAction) {
	getState().Set(actionKey(id), string(EncodeAction(act)))
}

// loadAction returns nil when no action sits under the id.
func loadAction(id ActionID) (*ScheduledAction, error) {
	ptr := getState().Get(actionKey(id))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	act, err := DecodeAction([]byte(*ptr))
	if err != nil {
		return nil, reject(ErrInvalidState, "failed to decode action record")
	}
	return act, nil
}

// deleteAction clears the slot entirely; absence means "does not exist".
func deleteAction(id ActionID) {
	getState().Delete(actionKey(id))
}
