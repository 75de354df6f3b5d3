package services

import (
	"context"
	"strings"

	"recontrack/internal/dao"
	"recontrack/internal/models"
	apperrors "recontrack/pkg/errors"
	"recontrack/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubdomainUpdate carries the mutable fields of a subdomain edit. Labels is
// the desired label name set, reconciled add-only against the current
// associations.
type SubdomainUpdate struct {
	Name         string
	IsMainPortal *bool
	HasHTTPOpen  *bool
	IsAlive      *bool
	IPAddress    string
	FromAgents   string
	Labels       []string
}

type SubdomainServiceMethods interface {
	GetSubdomain(ctx context.Context, targetName, rootDomainName, name string) (*models.Subdomain, error)
	CreateSubdomain(ctx context.Context, targetName, rootDomainName, name string) (*models.Subdomain, error)
	UpdateSubdomain(ctx context.Context, targetName, rootDomainName, name string, update SubdomainUpdate) (*models.Subdomain, error)
	AddLabel(ctx context.Context, targetName, rootDomainName, name, labelName string) (*models.Subdomain, error)
	DeleteSubdomain(ctx context.Context, targetName, rootDomainName, name string) error
}

type subdomainService struct {
	targetDao    dao.TargetDAO
	subdomainDao dao.SubdomainDAO
	labelDao     dao.LabelDAO
	logger       *logger.Logger
}

func NewSubdomainService(targetDao dao.TargetDAO, subdomainDao dao.SubdomainDAO, labelDao dao.LabelDAO) SubdomainServiceMethods {
	return &subdomainService{
		targetDao:    targetDao,
		subdomainDao: subdomainDao,
		labelDao:     labelDao,
		logger:       logger.NewLogger(logrus.InfoLevel),
	}
}

// resolveRootDomain walks the containment hierarchy: target first, then the
// root domain scoped to that target. The same domain string may exist under
// another target, so the order is load-bearing.
func (s *subdomainService) resolveRootDomain(ctx context.Context, targetName, rootDomainName string) (*models.RootDomain, error) {
	target, err := s.targetDao.GetTargetByName(ctx, targetName)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.ErrTargetNotFound
	}

	rootDomain, err := s.targetDao.GetRootDomainByName(ctx, target.ID, rootDomainName)
	if err != nil {
		return nil, err
	}
	if rootDomain == nil {
		return nil, apperrors.ErrRootDomainNotFound
	}
	return rootDomain, nil
}

func (s *subdomainService) getSubdomain(ctx context.Context, targetName, rootDomainName, name string) (*models.Subdomain, error) {
	rootDomain, err := s.resolveRootDomain(ctx, targetName, rootDomainName)
	if err != nil {
		return nil, err
	}

	subdomain, err := s.subdomainDao.GetByName(ctx, rootDomain.ID, name)
	if err != nil {
		return nil, err
	}
	if subdomain == nil {
		return nil, apperrors.ErrSubdomainNotFound
	}
	return subdomain, nil
}

func (s *subdomainService) GetSubdomain(ctx context.Context, targetName, rootDomainName, name string) (*models.Subdomain, error) {
	return s.getSubdomain(ctx, targetName, rootDomainName, name)
}

// normalizeHostname applies the same normalization as the bulk ingestion
// parser, so a name entered by hand and the same name uploaded later land on
// one row.
func normalizeHostname(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *subdomainService) CreateSubdomain(ctx context.Context, targetName, rootDomainName, name string) (*models.Subdomain, error) {
	name = normalizeHostname(name)

	rootDomain, err := s.resolveRootDomain(ctx, targetName, rootDomainName)
	if err != nil {
		return nil, err
	}

	// Advisory check; the unique index on (root_domain_id, name) backstops
	// concurrent creations.
	exists, err := s.subdomainDao.Exists(ctx, rootDomain.ID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("subdomain", name)
	}

	subdomain := &models.Subdomain{
		ID:           uuid.New().String(),
		Name:         name,
		RootDomainID: rootDomain.ID,
	}
	if err := s.subdomainDao.SaveSubdomain(ctx, subdomain); err != nil {
		return nil, err
	}

	s.logger.WithTarget(targetName, rootDomainName).WithField("subdomain", name).Info("Subdomain created")
	return subdomain, nil
}

func (s *subdomainService) UpdateSubdomain(ctx context.Context, targetName, rootDomainName, name string, update SubdomainUpdate) (*models.Subdomain, error) {
	subdomain, err := s.getSubdomain(ctx, targetName, rootDomainName, name)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		subdomain.Name = normalizeHostname(update.Name)
	}
	if update.IsMainPortal != nil {
		subdomain.IsMainPortal = *update.IsMainPortal
	}
	if update.HasHTTPOpen != nil {
		subdomain.HasHTTPOpen = update.HasHTTPOpen
	}
	if update.IsAlive != nil {
		subdomain.IsAlive = update.IsAlive
	}
	if update.IPAddress != "" {
		subdomain.IPAddress = update.IPAddress
	}
	if update.FromAgents != "" {
		subdomain.FromAgents = update.FromAgents
	}

	additions := ReconcileLabels(subdomain.Labels, update.Labels)
	if err := applyLabelAdditions(ctx, s.labelDao, subdomain, additions); err != nil {
		return nil, err
	}

	if err := s.subdomainDao.UpdateSubdomain(ctx, subdomain); err != nil {
		return nil, err
	}
	return subdomain, nil
}

func (s *subdomainService) AddLabel(ctx context.Context, targetName, rootDomainName, name, labelName string) (*models.Subdomain, error) {
	subdomain, err := s.getSubdomain(ctx, targetName, rootDomainName, name)
	if err != nil {
		return nil, err
	}

	additions := ReconcileLabels(subdomain.Labels, []string{labelName})
	if len(additions) == 0 {
		// Already associated; replay is a no-op.
		return subdomain, nil
	}
	if err := applyLabelAdditions(ctx, s.labelDao, subdomain, additions); err != nil {
		return nil, err
	}

	if err := s.subdomainDao.UpdateSubdomain(ctx, subdomain); err != nil {
		return nil, err
	}

	s.logger.WithTarget(targetName, rootDomainName).WithFields(logrus.Fields{
		"subdomain": subdomain.Name,
		"label":     labelName,
	}).Info("Label attached")
	return subdomain, nil
}

func (s *subdomainService) DeleteSubdomain(ctx context.Context, targetName, rootDomainName, name string) error {
	subdomain, err := s.getSubdomain(ctx, targetName, rootDomainName, name)
	if err != nil {
		return err
	}
	return s.subdomainDao.DeleteSubdomain(ctx, subdomain)
}
