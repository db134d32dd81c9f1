package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-interviewer/internal/models"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	Exists(email string, countryCode int, number int64) (bool, error)
	FindByOwner(createdBy string) ([]models.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create implements ContactRepository.
func (r *contactRepository) Create(contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}

	if err := r.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// Exists implements ContactRepository. Uniqueness is defined over the
// (email, country_code, number) triple, with the phone parts living
// inside the jsonb phone_number column.
func (r *contactRepository) Exists(email string, countryCode int, number int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("email = ?", email).
		Where("phone_number->>'country_code' = ?", fmt.Sprintf("%d", countryCode)).
		Where("phone_number->>'number' = ?", fmt.Sprintf("%d", number)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check contact: %w", err)
	}

	return count > 0, nil
}

// FindByOwner implements ContactRepository.
func (r *contactRepository) FindByOwner(createdBy string) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Where("created_by = ?", createdBy).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}
