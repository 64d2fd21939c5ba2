package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"alwantayf_backend/internals/features/admissions/model"
)

var ErrAdmissionNotFound = errors.New("admission not found")

// AdmissionRepository is the persistence seam; tests mock it, production
// uses the GORM implementation below.
type AdmissionRepository interface {
	Create(ctx context.Context, m *model.AdmissionModel) error
	FindAll(ctx context.Context, status, search string) ([]model.AdmissionModel, error)
	FindByID(ctx context.Context, id string) (*model.AdmissionModel, error)
	Save(ctx context.Context, m *model.AdmissionModel) error
	Delete(ctx context.Context, id string) error
}

type gormAdmissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepository(db *gorm.DB) AdmissionRepository {
	return &gormAdmissionRepository{db: db}
}

func (r *gormAdmissionRepository) Create(ctx context.Context, m *model.AdmissionModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindAll returns applications newest-first, optionally filtered by exact
// status ("all" and "" mean no filter) and a case-insensitive substring
// match on the student or guardian name.
func (r *gormAdmissionRepository) FindAll(ctx context.Context, status, search string) ([]model.AdmissionModel, error) {
	q := r.db.WithContext(ctx).Model(&model.AdmissionModel{}).Order("created_at DESC")

	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR parent_name ILIKE ?", like, like)
	}

	var admissions []model.AdmissionModel
	if err := q.Find(&admissions).Error; err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *gormAdmissionRepository) FindByID(ctx context.Context, id string) (*model.AdmissionModel, error) {
	var m model.AdmissionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdmissionNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormAdmissionRepository) Save(ctx context.Context, m *model.AdmissionModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *gormAdmissionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.AdmissionModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAdmissionNotFound
	}
	return nil
}
