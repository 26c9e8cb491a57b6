package domain

import "time"

// Role labels stored on users and checked by the permission middleware.
const (
	RoleAdmin           = "ADMIN"
	RoleMarketingEditor = "MARKETING_EDITOR"
	RoleTechnicalEditor = "TECHNICAL_EDITOR"
	RoleViewer          = "VIEWER"
)

var Roles = []string{RoleAdmin, RoleMarketingEditor, RoleTechnicalEditor, RoleViewer}

// User accounts are hard-deleted, so no DeletedAt here.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128" json:"name"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Role         string    `gorm:"size:32;default:VIEWER" json:"role"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// IsEditor reports whether the role may author content.
func (u *User) IsEditor() bool {
	return u.Role == RoleAdmin || u.Role == RoleMarketingEditor || u.Role == RoleTechnicalEditor
}
