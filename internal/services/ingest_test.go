package services

import (
	"context"
	"recontrack/internal/models"
	apperrors "recontrack/pkg/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newIngestFixture(existing []string) (*MockTargetDAO, *MockSubdomainDAO, IngestServiceMethods) {
	targetDao := new(MockTargetDAO)
	subdomainDao := new(MockSubdomainDAO)

	targetDao.On("GetTargetByName", mock.Anything, "acme").
		Return(&models.Target{ID: "t-1", Name: "acme"}, nil)
	targetDao.On("GetRootDomainByName", mock.Anything, "t-1", "acme.com").
		Return(&models.RootDomain{ID: "rd-1", Name: "acme.com", TargetID: "t-1"}, nil)
	subdomainDao.On("ListNames", mock.Anything, "rd-1").Return(existing, nil)

	return targetDao, subdomainDao, NewIngestService(targetDao, subdomainDao, nil)
}

func TestIngestDeltaOnly(t *testing.T) {
	_, subdomainDao, service := newIngestFixture([]string{"existing1.acme.com"})

	var saved []models.Subdomain
	subdomainDao.On("SaveSubdomains", mock.Anything, mock.MatchedBy(func(subdomains []models.Subdomain) bool {
		saved = subdomains
		return true
	})).Return(nil)

	upload := strings.Join([]string{
		"existing1.acme.com",
		"new1.acme.com",
		"existing1.acme.com",
		"new2.acme.com",
	}, "\n")

	created, err := service.Ingest(context.Background(), "acme", "acme.com", strings.NewReader(upload))

	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, "new1.acme.com", created[0].Name)
	assert.Equal(t, "new2.acme.com", created[1].Name)
	assert.Equal(t, saved, created)
	for _, subdomain := range created {
		assert.NotEmpty(t, subdomain.ID)
		assert.Equal(t, "rd-1", subdomain.RootDomainID)
	}
}

func TestIngestEmptyUpload(t *testing.T) {
	_, subdomainDao, service := newIngestFixture(nil)
	subdomainDao.On("SaveSubdomains", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Ingest(context.Background(), "acme", "acme.com", strings.NewReader("\n\n  \n"))

	assert.NoError(t, err)
	assert.Empty(t, created)
}

func TestIngestAllDuplicates(t *testing.T) {
	_, subdomainDao, service := newIngestFixture([]string{"a.acme.com", "b.acme.com"})
	subdomainDao.On("SaveSubdomains", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Ingest(context.Background(), "acme", "acme.com",
		strings.NewReader("a.acme.com\nb.acme.com\n"))

	assert.NoError(t, err)
	assert.Empty(t, created)
}

func TestIngestUnknownTarget(t *testing.T) {
	targetDao := new(MockTargetDAO)
	subdomainDao := new(MockSubdomainDAO)
	targetDao.On("GetTargetByName", mock.Anything, "nope").Return(nil, nil)

	service := NewIngestService(targetDao, subdomainDao, nil)
	_, err := service.Ingest(context.Background(), "nope", "acme.com", strings.NewReader("x.acme.com\n"))

	assert.ErrorIs(t, err, apperrors.ErrTargetNotFound)
	subdomainDao.AssertNotCalled(t, "SaveSubdomains", mock.Anything, mock.Anything)
}

func TestIngestUnknownRootDomain(t *testing.T) {
	targetDao := new(MockTargetDAO)
	subdomainDao := new(MockSubdomainDAO)
	targetDao.On("GetTargetByName", mock.Anything, "acme").
		Return(&models.Target{ID: "t-1", Name: "acme"}, nil)
	targetDao.On("GetRootDomainByName", mock.Anything, "t-1", "other.com").Return(nil, nil)

	service := NewIngestService(targetDao, subdomainDao, nil)
	_, err := service.Ingest(context.Background(), "acme", "other.com", strings.NewReader("x.other.com\n"))

	assert.ErrorIs(t, err, apperrors.ErrRootDomainNotFound)
}
