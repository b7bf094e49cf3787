package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Live user search result cap
	MaxSearchResults = 10

	// HTTP Headers
	HeaderContentType        = "Content-Type"
	HeaderAuthorization      = "Authorization"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAccelRedirect      = "X-Accel-Redirect"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeySuperuser = "superuser"
	ContextKeyStaff     = "staff"
	ContextKeySessionID = "session_id"

	// Database table names
	TableUsers              = "users"
	TableGroups             = "groups"
	TableUserGroups         = "user_groups"
	TablePermissions        = "permissions"
	TableGroupPermissions   = "group_permissions"
	TableCategories         = "categories"
	TableTickets            = "tickets"
	TableTicketParticipants = "ticket_participants"
	TableTicketModerators   = "ticket_moderators"
	TableComments           = "comments"
	TableAttachments        = "attachments"

	// Reserved account and group names. These rows carry a reserved flag in
	// the database; the names are only used by seeding and lookups.
	ReservedUserGhost   = "ghost"
	ReservedUserAdmin   = "admin"
	ReservedGroupAdmin  = "admin"
	ReservedGroupMod    = "moderator"
	ReservedGroupMember = "user"
)

// Policy resources.
const (
	ResourceUser       = "user"
	ResourceGroup      = "group"
	ResourceCategory   = "category"
	ResourceTicket     = "ticket"
	ResourceComment    = "comment"
	ResourceAttachment = "attachment"
	ResourceSetting    = "setting"
)

// Policy actions.
const (
	ActionView             = "view"
	ActionCreate           = "create"
	ActionUpdate           = "update"
	ActionDelete           = "delete"
	ActionHide             = "hide"
	ActionUnhide           = "unhide"
	ActionAdd              = "add"
	ActionChangePermission = "change_permission"
)
