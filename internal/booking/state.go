package booking

type decision struct {
	from    Status
	approve bool
}

// transitions lists every allowed owner decision. A missing entry is a rejected decision.
// Rejecting is accepted from any status, and a rejected booking may still be approved.
var transitions = map[decision]Status{
	{StatusWaiting, true}:   StatusApproved,
	{StatusWaiting, false}:  StatusRejected,
	{StatusApproved, false}: StatusRejected,
	{StatusRejected, true}:  StatusApproved,
	{StatusRejected, false}: StatusRejected,
}

// nextStatus returns the status a booking moves to when its owner decides.
func nextStatus(from Status, approve bool) (Status, error) {
	to, ok := transitions[decision{from: from, approve: approve}]
	if !ok {
		return "", ErrAlreadyApproved
	}
	return to, nil
}
