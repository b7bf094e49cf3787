package ticket

import (
	"fmt"
	"time"
)

// Comment is a numbered entry in a ticket's discussion thread. num is a
// per-ticket sequence assigned by the repository inside the insert
// transaction.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	num       uint
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(ticketID, authorID uint, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 10000 {
		return nil, fmt.Errorf("content exceeds maximum length of 10000 characters")
	}

	now := time.Now()
	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(id, ticketID, authorID, num uint, content string, createdAt, updatedAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		num:       num,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

// Num returns the comment's position in its ticket's thread
func (c *Comment) Num() uint {
	return c.num
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetNum assigns the per-ticket sequence number (repository use only)
func (c *Comment) SetNum(num uint) error {
	if c.num != 0 {
		return fmt.Errorf("comment num is already set")
	}
	if num == 0 {
		return fmt.Errorf("comment num cannot be zero")
	}
	c.num = num
	return nil
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > 10000 {
		return fmt.Errorf("content exceeds maximum length of 10000 characters")
	}

	c.content = content
	c.updatedAt = time.Now()
	return nil
}
