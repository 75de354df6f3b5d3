package services

import (
	"context"
	"fmt"
	"io"
	"recontrack/internal/dao"
	"recontrack/internal/models"
	"recontrack/internal/notification"
	apperrors "recontrack/pkg/errors"
	"recontrack/pkg/logger"
	"recontrack/pkg/parsers"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type IngestServiceMethods interface {
	Ingest(ctx context.Context, targetName, rootDomainName string, r io.Reader) ([]models.Subdomain, error)
}

type ingestService struct {
	targetDao    dao.TargetDAO
	subdomainDao dao.SubdomainDAO
	notifier     *notification.NotificationClient
	logger       *logger.Logger
}

// NewIngestService builds the bulk ingestion pipeline. notifier may be nil;
// discovery notifications are best effort.
func NewIngestService(targetDao dao.TargetDAO, subdomainDao dao.SubdomainDAO, notifier *notification.NotificationClient) IngestServiceMethods {
	return &ingestService{
		targetDao:    targetDao,
		subdomainDao: subdomainDao,
		notifier:     notifier,
		logger:       logger.NewLogger(logrus.InfoLevel),
	}
}

// Ingest parses a line-oriented hostname list, drops names the root domain
// already knows, persists the rest, and returns exactly the newly created
// records. An all-duplicate or empty batch returns an empty list, not an
// error. The dedup check is advisory; the unique index is the backstop for
// concurrent batches.
func (s *ingestService) Ingest(ctx context.Context, targetName, rootDomainName string, r io.Reader) ([]models.Subdomain, error) {
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

	names, err := parsers.ParseHostList(r)
	if err != nil {
		return nil, err
	}

	existing, err := s.subdomainDao.ListNames(ctx, rootDomain.ID)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}

	created := []models.Subdomain{}
	for _, name := range names {
		if _, ok := known[name]; ok {
			continue
		}
		created = append(created, models.Subdomain{
			ID:           uuid.New().String(),
			Name:         name,
			RootDomainID: rootDomain.ID,
		})
	}

	if err := s.subdomainDao.SaveSubdomains(ctx, created); err != nil {
		return nil, err
	}

	s.logger.WithTarget(targetName, rootDomainName).WithFields(logrus.Fields{
		"received": len(names),
		"created":  len(created),
	}).Info("Bulk ingestion finished")

	if s.notifier != nil && len(created) > 0 {
		s.notifyDiscoveries(targetName, rootDomainName, created)
	}

	return created, nil
}

func (s *ingestService) notifyDiscoveries(targetName, rootDomainName string, created []models.Subdomain) {
	msg := notification.Message{
		Title:       "New subdomains discovered",
		Description: fmt.Sprintf("%d new subdomains under %s", len(created), rootDomainName),
		Fields: map[string]string{
			"target":      targetName,
			"root_domain": rootDomainName,
		},
	}
	if err := s.notifier.Send(msg); err != nil {
		s.logger.WithError(err).Warn("Discovery notification failed")
	}
}
