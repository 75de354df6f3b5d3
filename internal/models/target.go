package models

import (
	"time"

	"gorm.io/gorm"
)

// Target is a tracked reconnaissance subject, typically a bug bounty program.
type Target struct {
	ID                  string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name                string         `gorm:"uniqueIndex;not null" json:"name"`
	BugBountyProgramURL string         `json:"bug_bounty_program_url"`
	InScope             string         `json:"in_scope"`
	OutOfScope          string         `json:"out_of_scope"`
	IsPrivate           bool           `json:"is_private"`
	RootDomains         []RootDomain   `gorm:"constraint:OnDelete:CASCADE" json:"root_domains,omitempty"`
	Note                *Note          `gorm:"constraint:OnDelete:CASCADE" json:"note,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// RootDomain groups the subdomains of one domain under a Target. The same
// domain string may exist under two different targets, so uniqueness is
// scoped by TargetID.
type RootDomain struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name       string         `gorm:"uniqueIndex:idx_rootdomain_target_name;not null" json:"name"`
	TargetID   string         `gorm:"uniqueIndex:idx_rootdomain_target_name;type:varchar(36);not null" json:"target_id"`
	Subdomains []Subdomain    `gorm:"constraint:OnDelete:CASCADE" json:"subdomains,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
