// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationState string

const (
	OrgStatePending  OrganizationState = "PENDING"
	OrgStateLocked   OrganizationState = "LOCKED"
	OrgStateUnlocked OrganizationState = "UNLOCKED"
)

type MembershipRole string

const (
	MembershipCreator MembershipRole = "CREATOR"
	MembershipAdmin   MembershipRole = "ADMIN"
	MembershipAdvisor MembershipRole = "ADVISOR"
	MembershipMember  MembershipRole = "MEMBER"
)

type Organization struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string            `gorm:"type:text;not null" json:"name"`
	URL         string            `gorm:"type:text;uniqueIndex;not null" json:"url"`
	Mission     string            `gorm:"type:text" json:"mission"`
	State       OrganizationState `gorm:"type:text;not null;default:'PENDING'" json:"state"`
	CreatedByID uuid.UUID         `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	CreatedBy User         `gorm:"foreignKey:CreatedByID" json:"-"`
	Members   []Membership `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
}

type Membership struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Role           MembershipRole `gorm:"type:text;not null;default:'MEMBER'" json:"role"`
	Approved       bool           `gorm:"not null;default:false" json:"approved"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Strike is a disciplinary mark issued against an organization by site admins.
type Strike struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	IssuedByID     uuid.UUID `gorm:"type:uuid;not null" json:"issued_by_id"`
	Reason         string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt      time.Time `json:"created_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	IssuedBy     User         `gorm:"foreignKey:IssuedByID" json:"-"`
}
