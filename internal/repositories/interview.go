package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/ai-interviewer/internal/apperrors"
	"alfredoptarigan/ai-interviewer/internal/models"
)

type InterviewRepository interface {
	CreateData(data *models.InterviewData) error
	CreateSession(interview *models.Interview) error
	FindByID(id string) (*models.Interview, error)
	UpdateResponses(id string, responses []string) error
	UpdateFeedback(id string, feedback string) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// CreateData implements InterviewRepository. The source-text record is
// written once per interview and never updated afterwards.
func (r *interviewRepository) CreateData(data *models.InterviewData) error {
	if err := r.db.Create(data).Error; err != nil {
		return fmt.Errorf("failed to save interview data: %w", err)
	}

	return nil
}

// CreateSession implements InterviewRepository.
func (r *interviewRepository) CreateSession(interview *models.Interview) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_question_id", "questions", "updated_at",
		}),
	}).Create(interview).Error
	if err != nil {
		return fmt.Errorf("failed to save interview: %w", err)
	}

	return nil
}

// FindByID implements InterviewRepository.
func (r *interviewRepository) FindByID(id string) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterviewNotFound
		}

		return nil, fmt.Errorf("failed to find interview: %w", err)
	}

	return &interview, nil
}

// UpdateResponses implements InterviewRepository. Upsert semantics keyed
// by id, matching the other session-state writes.
func (r *interviewRepository) UpdateResponses(id string, responses []string) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"responses", "updated_at"}),
	}).Create(&models.Interview{
		ID:        id,
		Responses: pq.StringArray(responses),
		UpdatedAt: time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update responses: %w", err)
	}

	return nil
}

// UpdateFeedback implements InterviewRepository.
func (r *interviewRepository) UpdateFeedback(id string, feedback string) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"feedback", "updated_at"}),
	}).Create(&models.Interview{
		ID:        id,
		Feedback:  feedback,
		UpdatedAt: time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	return nil
}
