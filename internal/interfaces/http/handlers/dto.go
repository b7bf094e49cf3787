package handlers

import (
	"time"

	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/group"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// Response DTOs translate aggregates into wire shapes. Getters keep the
// aggregates encapsulated, so every handler goes through these builders
// instead of marshaling domain types directly.

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Active    bool      `json:"active"`
	Superuser bool      `json:"superuser"`
	Staff     bool      `json:"staff"`
	GroupIDs  []uint    `json:"group_ids"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Username:  u.Username().String(),
		Email:     u.Email().String(),
		FirstName: u.Name().First(),
		LastName:  u.Name().Last(),
		Active:    u.IsActive(),
		Superuser: u.IsSuperuser(),
		Staff:     u.IsStaff(),
		GroupIDs:  u.GroupIDs(),
		CreatedAt: u.CreatedAt(),
	}
}

func NewUserResponseList(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UserSearchResponse is the trimmed shape the live username search
// returns; it leaks no email addresses.
type UserSearchResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func NewUserSearchResponseList(users []*user.User) []UserSearchResponse {
	out := make([]UserSearchResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserSearchResponse{
			ID:       u.ID(),
			Username: u.Username().String(),
			FullName: u.Name().Full(),
		})
	}
	return out
}

type GroupResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Reserved      bool      `json:"reserved"`
	PermissionIDs []uint    `json:"permission_ids"`
	MemberIDs     []uint    `json:"member_ids,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewGroupResponse(g *group.Group) GroupResponse {
	return GroupResponse{
		ID:            g.ID(),
		Name:          g.Name(),
		Slug:          g.Slug(),
		Reserved:      g.IsReserved(),
		PermissionIDs: g.PermissionIDs(),
		CreatedAt:     g.CreatedAt(),
	}
}

func NewGroupResponseList(groups []*group.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, NewGroupResponse(g))
	}
	return out
}

type PermissionResponse struct {
	ID          uint   `json:"id"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func NewPermissionResponseList(permissions []*group.Permission) []PermissionResponse {
	out := make([]PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		out = append(out, PermissionResponse{
			ID:          p.ID(),
			Resource:    p.Resource(),
			Action:      p.Action(),
			Code:        p.Code(),
			Description: p.Description(),
		})
	}
	return out
}

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func NewCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID(), Name: c.Name(), Color: c.Color()}
}

func NewCategoryResponseList(categories []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

type TicketResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	Hidden         bool      `json:"hidden"`
	OwnerID        uint      `json:"owner_id"`
	CategoryID     uint      `json:"category_id"`
	ParticipantIDs []uint    `json:"participant_ids"`
	ModeratorIDs   []uint    `json:"moderator_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:             t.ID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Location:       t.Location(),
		Status:         t.Status().String(),
		Hidden:         t.IsHidden(),
		OwnerID:        t.OwnerID(),
		CategoryID:     t.CategoryID(),
		ParticipantIDs: t.ParticipantIDs(),
		ModeratorIDs:   t.ModeratorIDs(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func NewTicketResponseList(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}

type CommentResponse struct {
	ID          uint                 `json:"id"`
	TicketID    uint                 `json:"ticket_id"`
	AuthorID    uint                 `json:"author_id"`
	Num         uint                 `json:"num"`
	Content     string               `json:"content"`
	ContentHTML string               `json:"content_html,omitempty"`
	Attachments []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func NewCommentResponse(c *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Num:       c.Num(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

type AttachmentResponse struct {
	ID         uint      `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploaderID uint      `json:"uploader_id"`
	TicketID   *uint     `json:"ticket_id,omitempty"`
	CommentID  *uint     `json:"comment_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAttachmentResponse(a *attachment.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:         a.ID(),
		Filename:   a.Filename(),
		Size:       a.Size(),
		UploaderID: a.UploaderID(),
		TicketID:   a.TicketID(),
		CommentID:  a.CommentID(),
		CreatedAt:  a.CreatedAt(),
	}
}

func NewAttachmentResponseList(attachments []*attachment.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, NewAttachmentResponse(a))
	}
	return out
}

// TicketDetailResponse is the single-ticket view with rendered bodies
// and the full comment thread.
type TicketDetailResponse struct {
	TicketResponse
	DescriptionHTML string               `json:"description_html"`
	Comments        []CommentResponse    `json:"comments"`
	Attachments     []AttachmentResponse `json:"attachments"`
}
