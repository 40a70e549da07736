package handler

import (
	"devops-reference/internal/domain"
	"devops-reference/internal/logger"
	"devops-reference/internal/middleware"
	"devops-reference/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReferenceHandler handles topic, scenario and question HTTP requests
type ReferenceHandler struct {
	service service.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler instance
func NewReferenceHandler(service service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
	}
}

// ListTopics godoc
// @Summary List interview topics
// @Description Returns the topic catalog with loaded question counts, filtered by an optional search term
// @Tags topics
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} dto.TopicListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /topics [get]
func (h *ReferenceHandler) ListTopics(c *fiber.Ctx) error {
	return c.JSON(h.service.ListTopics(searchTerm(c)))
}

// TopicQuestions godoc
// @Summary List questions in a topic
// @Description Returns the questions whose number falls in the topic range, ordered by number
// @Tags topics
// @Produce json
// @Param name path string true "Topic name or slug"
// @Success 200 {object} dto.TopicQuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /topics/{name}/questions [get]
func (h *ReferenceHandler) TopicQuestions(c *fiber.Ctx) error {
	resp, err := h.service.TopicQuestions(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListScenarios godoc
// @Summary List troubleshooting scenario categories
// @Tags scenarios
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} dto.ScenarioListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /scenarios [get]
func (h *ReferenceHandler) ListScenarios(c *fiber.Ctx) error {
	return c.JSON(h.service.ListScenarios(searchTerm(c)))
}

// ScenarioDetails godoc
// @Summary Get a scenario category
// @Description Returns a scenario category with its worked examples
// @Tags scenarios
// @Produce json
// @Param name path string true "Scenario name or slug"
// @Success 200 {object} dto.ScenarioDetailResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /scenarios/{name} [get]
func (h *ReferenceHandler) ScenarioDetails(c *fiber.Ctx) error {
	resp, err := h.service.ScenarioDetails(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Search godoc
// @Summary Search topics and scenarios
// @Description Filters both catalogs by case-insensitive substring match
// @Tags search
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /search [get]
func (h *ReferenceHandler) Search(c *fiber.Ctx) error {
	return c.JSON(h.service.Search(searchTerm(c)))
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *ReferenceHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.service.Question(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// TopicForNumber godoc
// @Summary Find the topic of a question number
// @Tags questions
// @Produce json
// @Param number path int true "Question number"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/number/{number}/topic [get]
func (h *ReferenceHandler) TopicForNumber(c *fiber.Ctx) error {
	number, ok := c.Locals(middleware.LocalQuestionNumber).(int)
	if !ok {
		return domain.NewInvalidInputError("Question number was not validated")
	}
	resp, err := h.service.TopicForNumber(number)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reload godoc
// @Summary Reload questions
// @Description Re-runs the load sequence and replaces the question snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /reload [post]
func (h *ReferenceHandler) Reload(c *fiber.Ctx) error {
	status := h.service.Reload(c.UserContext())
	logger.Get().Info("Questions reloaded",
		zap.String("snapshot_id", status.SnapshotID),
		zap.String("source", status.Source),
		zap.Int("count", status.QuestionCount),
	)
	return c.JSON(status)
}

// Status godoc
// @Summary Get snapshot status
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /status [get]
func (h *ReferenceHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

func searchTerm(c *fiber.Ctx) string {
	if term, ok := c.Locals(middleware.LocalSearchTerm).(string); ok {
		return term
	}
	return c.Query("q")
}
