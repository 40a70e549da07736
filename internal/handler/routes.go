package handler

import (
	"devops-reference/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the reference API on the given router
func RegisterRoutes(api fiber.Router, h *ReferenceHandler, vm *middleware.ValidationMiddleware) {
	api.Get("/topics", vm.ValidateSearchTerm(), h.ListTopics)
	api.Get("/topics/:name/questions", vm.ValidateCatalogKey("name"), h.TopicQuestions)

	api.Get("/scenarios", vm.ValidateSearchTerm(), h.ListScenarios)
	api.Get("/scenarios/:name", vm.ValidateCatalogKey("name"), h.ScenarioDetails)

	api.Get("/search", vm.ValidateSearchTerm(), h.Search)

	api.Get("/questions/number/:number/topic", vm.ValidateQuestionNumber(), h.TopicForNumber)
	api.Get("/questions/:id", vm.ValidateQuestionID(), h.GetQuestion)

	api.Post("/reload", h.Reload)
	api.Get("/status", h.Status)
}
