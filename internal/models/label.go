package models

import (
	"time"

	"gorm.io/gorm"
)

// Label is a reusable classification tag. Names are globally unique and
// matched case-sensitively; deleting a subdomain never deletes its labels,
// only the join rows linking them.
type Label struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name       string         `gorm:"uniqueIndex;not null" json:"name"`
	Subdomains []Subdomain    `gorm:"many2many:subdomain_labels;" json:"subdomains,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Note is a free-text annotation owned by exactly one subdomain or one
// target, never both.
type Note struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Content     string         `json:"content"`
	SubdomainID *string        `gorm:"uniqueIndex;type:varchar(36)" json:"subdomain_id,omitempty"`
	TargetID    *string        `gorm:"uniqueIndex;type:varchar(36)" json:"target_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
