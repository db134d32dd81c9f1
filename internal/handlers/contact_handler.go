package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ai-interviewer/internal/apperrors"
	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/repositories"
)

type ContactHandler struct {
	contactRepo repositories.ContactRepository
	userRepo    repositories.UserRepository
}

func NewContactHandler(
	contactRepo repositories.ContactRepository,
	userRepo repositories.UserRepository,
) *ContactHandler {
	return &ContactHandler{
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

// HandleAddContact handles POST /api/contacts/addContact
func (h *ContactHandler) HandleAddContact(c *fiber.Ctx) error {
	var req models.AddContactRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if _, err := h.userRepo.FindByID(createdBy); err != nil {
		log.Printf("❌ Add contact error: %v\n", err)
		if errors.Is(err, apperrors.ErrUnknownAccount) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	exists, err := h.contactRepo.Exists(req.Email, req.CountryCode, req.Number)
	if err != nil {
		log.Printf("❌ Add contact error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if exists {
		log.Printf("❌ Add contact error: %v\n", apperrors.ErrDuplicateContact)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Contact already exists",
		})
	}

	contact := &models.Contact{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
		PhoneNumber: models.PhoneNumber{
			CountryCode: req.CountryCode,
			Number:      req.Number,
		},
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.contactRepo.Create(contact); err != nil {
		log.Printf("❌ Add contact error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact added successfully",
		"contact": models.ContactResponse{
			ID:          contact.ID.String(),
			Name:        contact.Name,
			Email:       contact.Email,
			CountryCode: contact.PhoneNumber.CountryCode,
			Number:      contact.PhoneNumber.Number,
		},
	})
}

// HandleGetContacts handles GET /api/contacts/getContacts. The owner id
// comes from the caller (body or query), not from an authenticated
// identity.
func (h *ContactHandler) HandleGetContacts(c *fiber.Ctx) error {
	var req models.GetContactsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}
	if req.CreatedBy == "" {
		req.CreatedBy = c.Query("created_by")
	}

	contacts, err := h.contactRepo.FindByOwner(req.CreatedBy)
	if err != nil {
		log.Printf("❌ Get contacts error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(contacts)
}
