package models

import (
	"time"

	"gorm.io/gorm"
)

// Subdomain is a discovered host under a RootDomain, the primary asset
// record. HasHTTPOpen and IsAlive are nil until a probe reports either way.
type Subdomain struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string         `gorm:"uniqueIndex:idx_subdomain_rootdomain_name;not null" json:"name"`
	RootDomainID string         `gorm:"uniqueIndex:idx_subdomain_rootdomain_name;type:varchar(36);not null" json:"root_domain_id"`
	IsMainPortal bool           `json:"is_main_portal"`
	HasHTTPOpen  *bool          `json:"has_http_open"`
	IsAlive      *bool          `json:"is_alive"`
	IPAddress    string         `json:"ip_address"`
	FromAgents   string         `json:"from_agents"`
	Note         *Note          `gorm:"constraint:OnDelete:CASCADE" json:"note,omitempty"`
	Services     []Service      `gorm:"constraint:OnDelete:CASCADE" json:"services,omitempty"`
	Labels       []Label        `gorm:"many2many:subdomain_labels;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Service is an open network service observed on a subdomain.
type Service struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Port        int            `json:"port"`
	SubdomainID string         `gorm:"type:varchar(36);not null" json:"subdomain_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
