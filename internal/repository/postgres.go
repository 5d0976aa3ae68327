package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
)

type postgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (RecordStore, error) {
	if err := db.AutoMigrate(&model.Record{}); err != nil {
		return nil, err
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Create(ctx context.Context, record *model.Record) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *postgresStore) FindByID(ctx context.Context, id string) (*model.Record, error) {
	var record model.Record
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *postgresStore) FindAll(ctx context.Context) ([]model.Record, error) {
	records := []model.Record{}
	err := s.db.WithContext(ctx).Order("created_at").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *postgresStore) Update(ctx context.Context, record *model.Record) error {
	res := s.db.WithContext(ctx).Model(&model.Record{}).Where("id = ?", record.ID).
		Select("*").Omit("id", "created_at").Updates(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Record{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
