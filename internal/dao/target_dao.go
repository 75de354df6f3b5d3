package dao

import (
	"context"
	"errors"
	"recontrack/internal/models"

	"gorm.io/gorm"
)

// TargetDAO owns lookups and persistence for targets and their root domains.
// Lookups return (nil, nil) when no active record matches; soft-deleted rows
// are filtered by gorm's default DeletedAt scope.
type TargetDAO interface {
	SaveTarget(ctx context.Context, target *models.Target) error
	GetTargetByName(ctx context.Context, name string) (*models.Target, error)
	GetTargetWithTree(ctx context.Context, name string) (*models.Target, error)
	ListTargets(ctx context.Context) ([]models.Target, error)
	DeleteTarget(ctx context.Context, id string) error
	SaveRootDomain(ctx context.Context, rootDomain *models.RootDomain) error
	GetRootDomainByName(ctx context.Context, targetID, name string) (*models.RootDomain, error)
}

type targetDAO struct {
	db *gorm.DB
}

func NewTargetDAO(db *gorm.DB) TargetDAO {
	return &targetDAO{db: db}
}

func (dao *targetDAO) SaveTarget(ctx context.Context, target *models.Target) error {
	return dao.db.WithContext(ctx).Create(target).Error
}

func (dao *targetDAO) GetTargetByName(ctx context.Context, name string) (*models.Target, error) {
	var target models.Target
	err := dao.db.WithContext(ctx).Where("name = ?", name).First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &target, nil
}

func (dao *targetDAO) GetTargetWithTree(ctx context.Context, name string) (*models.Target, error) {
	var target models.Target
	err := dao.db.WithContext(ctx).
		Preload("Note").
		Preload("RootDomains").
		Preload("RootDomains.Subdomains").
		Preload("RootDomains.Subdomains.Note").
		Preload("RootDomains.Subdomains.Services").
		Preload("RootDomains.Subdomains.Labels").
		Where("name = ?", name).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &target, nil
}

func (dao *targetDAO) ListTargets(ctx context.Context) ([]models.Target, error) {
	var targets []models.Target
	if err := dao.db.WithContext(ctx).Order("created_at desc").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

func (dao *targetDAO) DeleteTarget(ctx context.Context, id string) error {
	result := dao.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Target{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dao *targetDAO) SaveRootDomain(ctx context.Context, rootDomain *models.RootDomain) error {
	return dao.db.WithContext(ctx).Create(rootDomain).Error
}

func (dao *targetDAO) GetRootDomainByName(ctx context.Context, targetID, name string) (*models.RootDomain, error) {
	var rootDomain models.RootDomain
	err := dao.db.WithContext(ctx).
		Where("target_id = ? AND name = ?", targetID, name).
		First(&rootDomain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rootDomain, nil
}
