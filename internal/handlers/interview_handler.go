package handlers

import (
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	extractor        services.TextExtractor
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	extractor services.TextExtractor,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		extractor:        extractor,
	}
}

// HandleStartInterview handles POST /api/start-interview
func (h *InterviewHandler) HandleStartInterview(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	resumeFiles := form.File["resume"]
	jdFiles := form.File["jobDescription"]
	if len(resumeFiles) == 0 || len(jdFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume and job description files are required",
		})
	}

	resumeText, err := h.extractFileText(resumeFiles[0])
	if err != nil {
		log.Printf("❌ Start interview error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobDescriptionText, err := h.extractFileText(jdFiles[0])
	if err != nil {
		log.Printf("❌ Start interview error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.interviewService.Start(c.Context(), resumeText, jobDescriptionText)
	if err != nil {
		log.Printf("❌ Start interview error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate questions",
		})
	}

	return c.JSON(models.StartInterviewResponse{
		InterviewID:     result.InterviewID,
		CurrentQuestion: result.FirstQuestion,
	})
}

// HandleNextQuestion handles POST /api/get-next-question
func (h *InterviewHandler) HandleNextQuestion(c *fiber.Ctx) error {
	var req models.NextQuestionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := h.interviewService.Advance(c.Context(), req.InterviewID, req.Response, req.CurrentQuestionID)
	if err != nil {
		log.Printf("❌ Next question error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process next question",
		})
	}

	return c.JSON(models.NextQuestionResponse{
		Question:          result.Question,
		CurrentQuestionID: result.CurrentQuestionID,
	})
}

// HandleEndInterview handles POST /api/end-interview
func (h *InterviewHandler) HandleEndInterview(c *fiber.Ctx) error {
	var req models.EndInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	feedback, err := h.interviewService.End(c.Context(), req.InterviewID)
	if err != nil {
		log.Printf("❌ End interview error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate feedback",
		})
	}

	return c.JSON(models.EndInterviewResponse{Feedback: feedback})
}

func (h *InterviewHandler) extractFileText(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	return h.extractor.ExtractText(fileHeader.Header.Get("Content-Type"), data)
}
