package services

import (
	"context"
	"recontrack/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockTargetDAO struct {
	mock.Mock
}

func (m *MockTargetDAO) SaveTarget(ctx context.Context, target *models.Target) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockTargetDAO) GetTargetByName(ctx context.Context, name string) (*models.Target, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Target), args.Error(1)
}

func (m *MockTargetDAO) GetTargetWithTree(ctx context.Context, name string) (*models.Target, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Target), args.Error(1)
}

func (m *MockTargetDAO) ListTargets(ctx context.Context) ([]models.Target, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Target), args.Error(1)
}

func (m *MockTargetDAO) DeleteTarget(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTargetDAO) SaveRootDomain(ctx context.Context, rootDomain *models.RootDomain) error {
	args := m.Called(ctx, rootDomain)
	return args.Error(0)
}

func (m *MockTargetDAO) GetRootDomainByName(ctx context.Context, targetID, name string) (*models.RootDomain, error) {
	args := m.Called(ctx, targetID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RootDomain), args.Error(1)
}

type MockSubdomainDAO struct {
	mock.Mock
}

func (m *MockSubdomainDAO) GetByName(ctx context.Context, rootDomainID, name string) (*models.Subdomain, error) {
	args := m.Called(ctx, rootDomainID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subdomain), args.Error(1)
}

func (m *MockSubdomainDAO) ListByRootDomain(ctx context.Context, rootDomainID string) ([]models.Subdomain, error) {
	args := m.Called(ctx, rootDomainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subdomain), args.Error(1)
}

func (m *MockSubdomainDAO) ListNames(ctx context.Context, rootDomainID string) ([]string, error) {
	args := m.Called(ctx, rootDomainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSubdomainDAO) Exists(ctx context.Context, rootDomainID, name string) (bool, error) {
	args := m.Called(ctx, rootDomainID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubdomainDAO) SaveSubdomain(ctx context.Context, subdomain *models.Subdomain) error {
	args := m.Called(ctx, subdomain)
	return args.Error(0)
}

func (m *MockSubdomainDAO) SaveSubdomains(ctx context.Context, subdomains []models.Subdomain) error {
	args := m.Called(ctx, subdomains)
	return args.Error(0)
}

func (m *MockSubdomainDAO) UpdateSubdomain(ctx context.Context, subdomain *models.Subdomain) error {
	args := m.Called(ctx, subdomain)
	return args.Error(0)
}

func (m *MockSubdomainDAO) DeleteSubdomain(ctx context.Context, subdomain *models.Subdomain) error {
	args := m.Called(ctx, subdomain)
	return args.Error(0)
}

type MockLabelDAO struct {
	mock.Mock
}

func (m *MockLabelDAO) GetOrCreate(ctx context.Context, name string) (*models.Label, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelDAO) ListLabels(ctx context.Context) ([]models.Label, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Label), args.Error(1)
}
