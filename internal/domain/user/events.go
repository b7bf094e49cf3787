package user

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/shared/events"
)

// Event types
const (
	EventTypeUserRegistered           = "user.registered"
	EventTypeUserEmailChangeRequested = "user.email.change_requested"
	EventTypeUserEmailConfirmed       = "user.email.confirmed"
	EventTypeUserPasswordChanged      = "user.password.changed"
)

// UserRegisteredEvent is emitted when a new account is created
type UserRegisteredEvent struct {
	events.BaseEvent
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserRegisteredEvent creates a new user registered event
func NewUserRegisteredEvent(userID uint, username, email string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserRegistered,
			OccurredAt:  time.Now(),
		},
		UserID:   userID,
		Username: username,
		Email:    email,
	}
}

// UserEmailChangeRequestedEvent is emitted when a new address is staged
type UserEmailChangeRequestedEvent struct {
	events.BaseEvent
	UserID   uint   `json:"user_id"`
	OldEmail string `json:"old_email"`
	NewEmail string `json:"new_email"`
}

func NewUserEmailChangeRequestedEvent(userID uint, oldEmail, newEmail string) UserEmailChangeRequestedEvent {
	return UserEmailChangeRequestedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserEmailChangeRequested,
			OccurredAt:  time.Now(),
		},
		UserID:   userID,
		OldEmail: oldEmail,
		NewEmail: newEmail,
	}
}

// UserEmailConfirmedEvent is emitted when the address is verified
type UserEmailConfirmedEvent struct {
	events.BaseEvent
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

func NewUserEmailConfirmedEvent(userID uint, email string) UserEmailConfirmedEvent {
	return UserEmailConfirmedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserEmailConfirmed,
			OccurredAt:  time.Now(),
		},
		UserID: userID,
		Email:  email,
	}
}

// UserPasswordChangedEvent is emitted when the password hash is replaced
type UserPasswordChangedEvent struct {
	events.BaseEvent
	UserID uint `json:"user_id"`
}

func NewUserPasswordChangedEvent(userID uint) UserPasswordChangedEvent {
	return UserPasswordChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserPasswordChanged,
			OccurredAt:  time.Now(),
		},
		UserID: userID,
	}
}
