package dao

import (
	"context"
	"errors"
	"recontrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabelDAO is the label registry: it resolves names to canonical Label rows,
// creating missing ones. Name matching is case-sensitive exact.
type LabelDAO interface {
	GetOrCreate(ctx context.Context, name string) (*models.Label, error)
	ListLabels(ctx context.Context) ([]models.Label, error)
}

type labelDAO struct {
	db *gorm.DB
}

func NewLabelDAO(db *gorm.DB) LabelDAO {
	return &labelDAO{db: db}
}

func (dao *labelDAO) GetOrCreate(ctx context.Context, name string) (*models.Label, error) {
	var label models.Label
	err := dao.db.WithContext(ctx).Where("name = ?", name).First(&label).Error
	if err == nil {
		return &label, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	label = models.Label{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := dao.db.WithContext(ctx).Create(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

func (dao *labelDAO) ListLabels(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	if err := dao.db.WithContext(ctx).Order("name asc").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}
