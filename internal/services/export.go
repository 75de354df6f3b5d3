package services

import (
	"context"
	"recontrack/internal/models"
	apperrors "recontrack/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Export document shapes. Kept separate from the gorm models so the wire
// format does not drift with schema details.
type targetExport struct {
	Name                string             `yaml:"name"`
	BugBountyProgramURL string             `yaml:"bug_bounty_program_url,omitempty"`
	InScope             string             `yaml:"in_scope,omitempty"`
	OutOfScope          string             `yaml:"out_of_scope,omitempty"`
	IsPrivate           bool               `yaml:"is_private"`
	Note                string             `yaml:"note,omitempty"`
	RootDomains         []rootDomainExport `yaml:"root_domains"`
}

type rootDomainExport struct {
	Name       string            `yaml:"name"`
	Subdomains []subdomainExport `yaml:"subdomains"`
}

type subdomainExport struct {
	Name         string          `yaml:"name"`
	IsMainPortal bool            `yaml:"is_main_portal,omitempty"`
	HasHTTPOpen  *bool           `yaml:"has_http_open,omitempty"`
	IsAlive      *bool           `yaml:"is_alive,omitempty"`
	IPAddress    string          `yaml:"ip_address,omitempty"`
	FromAgents   string          `yaml:"from_agents,omitempty"`
	Note         string          `yaml:"note,omitempty"`
	Services     []serviceExport `yaml:"services,omitempty"`
	Labels       []string        `yaml:"labels,omitempty"`
}

type serviceExport struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

// ExportTarget renders a target's full subtree as a YAML document.
func (s *targetService) ExportTarget(ctx context.Context, name string) ([]byte, error) {
	target, err := s.targetDao.GetTargetWithTree(ctx, name)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.ErrTargetNotFound
	}

	doc := targetExport{
		Name:                target.Name,
		BugBountyProgramURL: target.BugBountyProgramURL,
		InScope:             target.InScope,
		OutOfScope:          target.OutOfScope,
		IsPrivate:           target.IsPrivate,
		RootDomains:         make([]rootDomainExport, 0, len(target.RootDomains)),
	}
	if target.Note != nil {
		doc.Note = target.Note.Content
	}

	for _, rootDomain := range target.RootDomains {
		rd := rootDomainExport{
			Name:       rootDomain.Name,
			Subdomains: make([]subdomainExport, 0, len(rootDomain.Subdomains)),
		}
		for _, subdomain := range rootDomain.Subdomains {
			rd.Subdomains = append(rd.Subdomains, exportSubdomain(subdomain))
		}
		doc.RootDomains = append(doc.RootDomains, rd)
	}

	return yaml.Marshal(&doc)
}

func exportSubdomain(subdomain models.Subdomain) subdomainExport {
	exp := subdomainExport{
		Name:         subdomain.Name,
		IsMainPortal: subdomain.IsMainPortal,
		HasHTTPOpen:  subdomain.HasHTTPOpen,
		IsAlive:      subdomain.IsAlive,
		IPAddress:    subdomain.IPAddress,
		FromAgents:   subdomain.FromAgents,
	}
	if subdomain.Note != nil {
		exp.Note = subdomain.Note.Content
	}
	for _, service := range subdomain.Services {
		exp.Services = append(exp.Services, serviceExport{Name: service.Name, Port: service.Port})
	}
	for _, label := range subdomain.Labels {
		exp.Labels = append(exp.Labels, label.Name)
	}
	return exp
}
