package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleCreate handles POST /api/interviews
func (h *InterviewHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: "invalid request payload",
		})
	}

	conversation, err := h.interviewService.Create(req)
	if err != nil {
		return respondError(c, err, "Interview not found")
	}

	return c.Status(fiber.StatusCreated).JSON(conversation)
}

// HandleGet handles GET /api/interviews/:id
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	conversation, err := h.interviewService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Interview not found")
	}

	return c.JSON(conversation)
}

// HandleList handles GET /api/interviews
func (h *InterviewHandler) HandleList(c *fiber.Ctx) error {
	conversations, err := h.interviewService.List()
	if err != nil {
		return respondError(c, err, "Interview not found")
	}

	if conversations == nil {
		conversations = []models.Conversation{}
	}
	return c.JSON(conversations)
}

// HandleAddMessage handles POST /api/interviews/:id/messages
func (h *InterviewHandler) HandleAddMessage(c *fiber.Ctx) error {
	var req models.AddMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: "invalid request payload",
		})
	}

	message, err := h.interviewService.AddMessage(c.Params("id"), req)
	if err != nil {
		return respondError(c, err, "Interview not found")
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleEnd handles POST /api/interviews/:id/end
func (h *InterviewHandler) HandleEnd(c *fiber.Ctx) error {
	feedback, err := h.interviewService.End(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Interview not found")
	}

	return c.JSON(feedback)
}
