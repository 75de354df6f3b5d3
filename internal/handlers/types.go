package handlers

import "recontrack/internal/models"

type TargetRequest struct {
	Name                string `json:"name" binding:"required"`
	BugBountyProgramURL string `json:"bug_bounty_program_url"`
	InScope             string `json:"in_scope"`
	OutOfScope          string `json:"out_of_scope"`
	IsPrivate           bool   `json:"is_private"`
}

type RootDomainRequest struct {
	Name string `json:"name" binding:"required"`
}

type SubdomainRequest struct {
	Name string `json:"name" binding:"required"`
}

type SubdomainUpdateRequest struct {
	Name         string   `json:"name"`
	IsMainPortal *bool    `json:"is_main_portal"`
	HasHTTPOpen  *bool    `json:"has_http_open"`
	IsAlive      *bool    `json:"is_alive"`
	IPAddress    string   `json:"ip_address"`
	FromAgents   string   `json:"from_agents"`
	Labels       []string `json:"labels"`
}

type LabelRequest struct {
	Label string `json:"label" binding:"required"`
}

type UploadResponse struct {
	Created []models.Subdomain `json:"created"`
}
