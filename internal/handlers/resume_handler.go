package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type ResumeHandler struct {
	resumeService services.ResumeService
}

func NewResumeHandler(resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

// HandleAnalyze handles POST /api/resume/analyze
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: "invalid request payload",
		})
	}

	result, err := h.resumeService.Analyze(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Resume not found")
	}

	return c.JSON(result)
}

// HandleExtract handles POST /api/resume/extract
func (h *ResumeHandler) HandleExtract(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: "resume file is required",
			Field:   "resume",
		})
	}

	result, err := h.resumeService.ExtractPDF(file)
	if err != nil {
		return respondError(c, err, "Resume not found")
	}

	return c.JSON(result)
}
