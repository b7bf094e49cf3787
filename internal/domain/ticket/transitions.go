package ticket

import vo "helpdesk/internal/domain/ticket/valueobjects"

// autoTransitionTrigger names an event that may move a ticket's status
// without an explicit status change request.
type autoTransitionTrigger string

const (
	autoTransitionModeratorAdded autoTransitionTrigger = "moderator_added"
)

type autoTransitionRule struct {
	from vo.Status
	to   vo.Status
}

// autoTransitions is the complete table of automatic status moves.
// A rule fires only when the ticket currently holds the rule's from
// status, so repeated triggers are no-ops.
var autoTransitions = map[autoTransitionTrigger]autoTransitionRule{
	autoTransitionModeratorAdded: {from: vo.StatusUnassigned, to: vo.StatusAssigned},
}
