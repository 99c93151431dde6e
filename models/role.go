package models

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleEditor    UserRole = "editor"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

type Action string

const (
	ActionArticleCreate    Action = "article:create"
	ActionArticleRead      Action = "article:read"
	ActionArticleList      Action = "article:list"
	ActionArticleManageAny Action = "article:manage-any"
	ActionUploadImage      Action = "upload:image"
	ActionAdminPanel       Action = "admin:panel"
)

// capabilities is the single place role checks happen. Handlers and
// services ask Role.Can instead of comparing role strings.
var capabilities = map[UserRole]map[Action]bool{
	RoleUser: {},
	RoleEditor: {
		ActionArticleCreate: true,
		ActionArticleRead:   true,
		ActionArticleList:   true,
		ActionUploadImage:   true,
	},
	RoleModerator: {
		ActionArticleCreate:    true,
		ActionArticleRead:      true,
		ActionArticleList:      true,
		ActionArticleManageAny: true,
		ActionUploadImage:      true,
	},
	RoleAdmin: {
		ActionArticleCreate:    true,
		ActionArticleRead:      true,
		ActionArticleList:      true,
		ActionArticleManageAny: true,
		ActionUploadImage:      true,
		ActionAdminPanel:       true,
	},
}

func (r UserRole) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

func (r UserRole) Can(a Action) bool {
	caps, ok := capabilities[r]
	if !ok {
		return false
	}
	return caps[a]
}

// Principal is the authenticated caller, resolved once per request by
// the auth middleware and carried through the gin context.
type Principal struct {
	UserID   uint
	Username string
	Role     UserRole
}

func (p Principal) Can(a Action) bool {
	return p.Role.Can(a)
}
