package services

import (
	"context"
	"recontrack/internal/dao"
	"recontrack/internal/models"
	apperrors "recontrack/pkg/errors"
	"recontrack/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TargetCreate struct {
	Name                string
	BugBountyProgramURL string
	InScope             string
	OutOfScope          string
	IsPrivate           bool
}

type TargetServiceMethods interface {
	CreateTarget(ctx context.Context, create TargetCreate) (*models.Target, error)
	GetTarget(ctx context.Context, name string) (*models.Target, error)
	ListTargets(ctx context.Context) ([]models.Target, error)
	DeleteTarget(ctx context.Context, name string) error
	CreateRootDomain(ctx context.Context, targetName, domainName string) (*models.RootDomain, error)
	ExportTarget(ctx context.Context, name string) ([]byte, error)
}

type targetService struct {
	targetDao dao.TargetDAO
	logger    *logger.Logger
}

func NewTargetService(targetDao dao.TargetDAO) TargetServiceMethods {
	return &targetService{targetDao: targetDao, logger: logger.NewLogger(logrus.InfoLevel)}
}

func (s *targetService) CreateTarget(ctx context.Context, create TargetCreate) (*models.Target, error) {
	existing, err := s.targetDao.GetTargetByName(ctx, create.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("target", create.Name)
	}

	target := &models.Target{
		ID:                  uuid.New().String(),
		Name:                create.Name,
		BugBountyProgramURL: create.BugBountyProgramURL,
		InScope:             create.InScope,
		OutOfScope:          create.OutOfScope,
		IsPrivate:           create.IsPrivate,
	}
	if err := s.targetDao.SaveTarget(ctx, target); err != nil {
		return nil, err
	}

	s.logger.WithFields(logger.Fields{"target": target.Name}).Info("Target created")
	return target, nil
}

func (s *targetService) GetTarget(ctx context.Context, name string) (*models.Target, error) {
	target, err := s.targetDao.GetTargetWithTree(ctx, name)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.ErrTargetNotFound
	}
	return target, nil
}

func (s *targetService) ListTargets(ctx context.Context) ([]models.Target, error) {
	return s.targetDao.ListTargets(ctx)
}

func (s *targetService) DeleteTarget(ctx context.Context, name string) error {
	target, err := s.targetDao.GetTargetByName(ctx, name)
	if err != nil {
		return err
	}
	if target == nil {
		return apperrors.ErrTargetNotFound
	}
	return s.targetDao.DeleteTarget(ctx, target.ID)
}

func (s *targetService) CreateRootDomain(ctx context.Context, targetName, domainName string) (*models.RootDomain, error) {
	target, err := s.targetDao.GetTargetByName(ctx, targetName)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.ErrTargetNotFound
	}

	existing, err := s.targetDao.GetRootDomainByName(ctx, target.ID, domainName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("root domain", domainName)
	}

	rootDomain := &models.RootDomain{
		ID:       uuid.New().String(),
		Name:     domainName,
		TargetID: target.ID,
	}
	if err := s.targetDao.SaveRootDomain(ctx, rootDomain); err != nil {
		return nil, err
	}
	return rootDomain, nil
}
