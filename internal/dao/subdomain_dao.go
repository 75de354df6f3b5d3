package dao

import (
	"context"
	"errors"
	"recontrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubdomainDAO owns CRUD and query composition for subdomain aggregates.
// Reads eager-load the child collections (note, services, labels); lookups
// return (nil, nil) when no active record matches.
type SubdomainDAO interface {
	GetByName(ctx context.Context, rootDomainID, name string) (*models.Subdomain, error)
	ListByRootDomain(ctx context.Context, rootDomainID string) ([]models.Subdomain, error)
	ListNames(ctx context.Context, rootDomainID string) ([]string, error)
	Exists(ctx context.Context, rootDomainID, name string) (bool, error)
	SaveSubdomain(ctx context.Context, subdomain *models.Subdomain) error
	SaveSubdomains(ctx context.Context, subdomains []models.Subdomain) error
	UpdateSubdomain(ctx context.Context, subdomain *models.Subdomain) error
	DeleteSubdomain(ctx context.Context, subdomain *models.Subdomain) error
}

type subdomainDAO struct {
	db *gorm.DB
}

func NewSubdomainDAO(db *gorm.DB) SubdomainDAO {
	return &subdomainDAO{db: db}
}

func (dao *subdomainDAO) GetByName(ctx context.Context, rootDomainID, name string) (*models.Subdomain, error) {
	var subdomain models.Subdomain
	err := dao.db.WithContext(ctx).
		Preload("Note").
		Preload("Services").
		Preload("Labels").
		Where("root_domain_id = ? AND name = ?", rootDomainID, name).
		First(&subdomain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subdomain, nil
}

func (dao *subdomainDAO) ListByRootDomain(ctx context.Context, rootDomainID string) ([]models.Subdomain, error) {
	var subdomains []models.Subdomain
	err := dao.db.WithContext(ctx).
		Preload("Services").
		Preload("Labels").
		Where("root_domain_id = ?", rootDomainID).
		Order("name asc").
		Find(&subdomains).Error
	if err != nil {
		return nil, err
	}
	return subdomains, nil
}

func (dao *subdomainDAO) ListNames(ctx context.Context, rootDomainID string) ([]string, error) {
	var names []string
	err := dao.db.WithContext(ctx).
		Model(&models.Subdomain{}).
		Where("root_domain_id = ?", rootDomainID).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (dao *subdomainDAO) Exists(ctx context.Context, rootDomainID, name string) (bool, error) {
	var count int64
	err := dao.db.WithContext(ctx).
		Model(&models.Subdomain{}).
		Where("root_domain_id = ? AND name = ?", rootDomainID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dao *subdomainDAO) SaveSubdomain(ctx context.Context, subdomain *models.Subdomain) error {
	return dao.db.WithContext(ctx).Create(subdomain).Error
}

func (dao *subdomainDAO) SaveSubdomains(ctx context.Context, subdomains []models.Subdomain) error {
	if len(subdomains) == 0 {
		return nil
	}
	return dao.db.WithContext(ctx).CreateInBatches(subdomains, 100).Error
}

// UpdateSubdomain persists mutated fields together with the reconciled child
// collections in one commit. FullSaveAssociations upserts association rows by
// primary key, so replaying the same label set inserts nothing new.
func (dao *subdomainDAO) UpdateSubdomain(ctx context.Context, subdomain *models.Subdomain) error {
	return dao.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(subdomain).Error
}

// DeleteSubdomain removes the subdomain and its owned note and services, and
// clears the subdomain_labels join rows. The labels themselves survive.
func (dao *subdomainDAO) DeleteSubdomain(ctx context.Context, subdomain *models.Subdomain) error {
	result := dao.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(subdomain)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
