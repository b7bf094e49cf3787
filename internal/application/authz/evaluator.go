package authz

import (
	"context"
	"strconv"

	"helpdesk/internal/domain/group"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

// Actor is the authenticated principal a decision is made for.
type Actor struct {
	ID        uint
	Superuser bool
}

// Ref carries the facts about the object under decision. Zero values
// mean "not applicable"; boolean facts are resolved by the caller from
// already-loaded aggregates so the evaluator stays storage-free.
type Ref struct {
	Kind string

	// OwnerID is the owning user for tickets, the author for comments,
	// the subject for user operations.
	OwnerID uint

	// Ticket facts.
	Hidden      bool
	Participant bool
	Moderator   bool

	// Attachment facts.
	UploaderID            uint
	LinkedTicketOwnerID   uint
	LinkedCommentAuthorID uint
}

// Evaluator is the single policy decision point. Every handler path
// funnels through Decide so the ownership and permission rules live in
// one place.
type Evaluator struct {
	enforcer group.PermissionEnforcer
	logger   logger.Interface
}

func NewEvaluator(enforcer group.PermissionEnforcer, log logger.Interface) *Evaluator {
	return &Evaluator{
		enforcer: enforcer,
		logger:   log,
	}
}

// HasPermission checks a named permission for the actor. Superusers
// hold every permission implicitly.
func (e *Evaluator) HasPermission(actor Actor, resource, action string) bool {
	if actor.Superuser {
		return true
	}

	allowed, err := e.enforcer.Enforce(strconv.FormatUint(uint64(actor.ID), 10), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed, denying",
			"error", err, "user_id", actor.ID, "resource", resource, "action", action)
		return false
	}
	return allowed
}

// Decide answers whether the actor may perform action on the object
// described by ref. Precedence: superuser, then the per-kind ownership
// rules, then the named permission.
func (e *Evaluator) Decide(ctx context.Context, actor Actor, ref Ref, action string) bool {
	if actor.Superuser {
		return true
	}

	switch ref.Kind {
	case constants.ResourceTicket:
		return e.decideTicket(actor, ref, action)
	case constants.ResourceComment:
		return e.decideComment(actor, ref, action)
	case constants.ResourceAttachment:
		return e.decideAttachment(actor, ref, action)
	case constants.ResourceUser:
		return e.decideUser(actor, ref, action)
	case constants.ResourceSetting:
		// Settings are superuser-only; reaching here means deny.
		return false
	default:
		return e.HasPermission(actor, ref.Kind, action)
	}
}

func (e *Evaluator) decideTicket(actor Actor, ref Ref, action string) bool {
	switch action {
	case constants.ActionView:
		if ref.Hidden && !e.HasPermission(actor, constants.ResourceTicket, constants.ActionUnhide) {
			return false
		}
		if actor.ID == ref.OwnerID || ref.Participant || ref.Moderator {
			return true
		}
		return e.HasPermission(actor, constants.ResourceTicket, constants.ActionView)
	case constants.ActionUpdate:
		// Owners may edit their own ticket info and description; status
		// changes and triage go through the same named permission.
		if actor.ID == ref.OwnerID {
			return true
		}
		return e.HasPermission(actor, constants.ResourceTicket, constants.ActionUpdate)
	default:
		return e.HasPermission(actor, constants.ResourceTicket, action)
	}
}

func (e *Evaluator) decideComment(actor Actor, ref Ref, action string) bool {
	if action == constants.ActionUpdate && actor.ID == ref.OwnerID {
		return true
	}
	return e.HasPermission(actor, constants.ResourceComment, action)
}

// decideAttachment implements the retrieval precedence chain: uploader,
// linked ticket owner, linked comment author, named permission, then
// ticket membership.
func (e *Evaluator) decideAttachment(actor Actor, ref Ref, action string) bool {
	switch action {
	case constants.ActionView:
		if actor.ID == ref.UploaderID {
			return true
		}
		if ref.LinkedTicketOwnerID != 0 && actor.ID == ref.LinkedTicketOwnerID {
			return true
		}
		if ref.LinkedCommentAuthorID != 0 && actor.ID == ref.LinkedCommentAuthorID {
			return true
		}
		if e.HasPermission(actor, constants.ResourceAttachment, constants.ActionView) {
			return true
		}
		return ref.Participant || ref.Moderator
	case constants.ActionDelete:
		if actor.ID == ref.UploaderID {
			return true
		}
		if ref.LinkedTicketOwnerID != 0 && actor.ID == ref.LinkedTicketOwnerID {
			return true
		}
		if ref.LinkedCommentAuthorID != 0 && actor.ID == ref.LinkedCommentAuthorID {
			return true
		}
		return e.HasPermission(actor, constants.ResourceAttachment, constants.ActionDelete)
	default:
		return e.HasPermission(actor, constants.ResourceAttachment, action)
	}
}

func (e *Evaluator) decideUser(actor Actor, ref Ref, action string) bool {
	switch action {
	case constants.ActionView, constants.ActionUpdate, constants.ActionDelete:
		if actor.ID == ref.OwnerID {
			return true
		}
	}
	return e.HasPermission(actor, constants.ResourceUser, action)
}
