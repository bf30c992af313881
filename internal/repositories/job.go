package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	CreateBatch(jobs []models.Job) error
	FindAll() ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) CreateBatch(jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	if err := r.db.Create(&jobs).Error; err != nil {
		return fmt.Errorf("failed to create jobs: %w", err)
	}
	return nil
}

func (r *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}
