package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	domainRepo "github.com/mainak-github/sk-electricks-api/internal/domain/repository"
)

type serviceJobRepository struct {
	db *gorm.DB
}

// NewServiceJobRepository creates a new service job repository
func NewServiceJobRepository(db *gorm.DB) domainRepo.ServiceJobRepository {
	return &serviceJobRepository{db: db}
}

func (r *serviceJobRepository) Create(ctx context.Context, job *entity.ServiceJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *serviceJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceJob, error) {
	var job entity.ServiceJob
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *serviceJobRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ServiceJob, error) {
	var job entity.ServiceJob
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *serviceJobRepository) GetByNumber(ctx context.Context, jobNo string) (*entity.ServiceJob, error) {
	var job entity.ServiceJob
	err := r.db.WithContext(ctx).First(&job, "job_no = ?", jobNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

// Update replaces the document and its lines wholesale, same contract
// as the sale repository.
func (r *serviceJobRepository) Update(ctx context.Context, job *entity.ServiceJob) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("service_job_id = ?", job.ID).Delete(&entity.ServiceJobLine{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Lines").Save(job).Error; err != nil {
			return err
		}
		if len(job.Lines) == 0 {
			return nil
		}
		for i := range job.Lines {
			job.Lines[i].ServiceJobID = job.ID
		}
		return tx.Create(&job.Lines).Error
	})
}

func (r *serviceJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.ServiceJob{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *serviceJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ServiceJob{}, "id = ?", id).Error
}

func (r *serviceJobRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.DocumentFilterParams) ([]entity.ServiceJob, int64, error) {
	var jobs []entity.ServiceJob
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ServiceJob{})
	if !params.SkipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Where("job_no ILIKE ? OR customer_name ILIKE ? OR device_info ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PartyID != nil {
		query = query.Where("customer_id = ?", *params.PartyID)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(orderClause(params.SortBy, params.SortOrder, serviceJobSortColumns)).
		Find(&jobs).Error

	return jobs, total, err
}
