package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/contract"
)

// RegisterRoutes binds every contract endpoint to its handler. The contract
// registry is the single source of truth for methods and paths; the Go client
// consumes the same registry, so the two sides cannot drift.
func RegisterRoutes(
	app *fiber.App,
	registry contract.Registry,
	interviews *InterviewHandler,
	resumes *ResumeHandler,
	jobs *JobHandler,
) {
	bind := func(ep contract.Endpoint, handler fiber.Handler) {
		app.Add(ep.Method, ep.Path, handler)
	}

	bind(registry.InterviewsCreate, interviews.HandleCreate)
	bind(registry.InterviewsList, interviews.HandleList)
	bind(registry.InterviewsGet, interviews.HandleGet)
	bind(registry.InterviewsAddMessage, interviews.HandleAddMessage)
	bind(registry.InterviewsEnd, interviews.HandleEnd)
	bind(registry.ResumeAnalyze, resumes.HandleAnalyze)
	bind(registry.ResumeExtract, resumes.HandleExtract)
	bind(registry.JobsList, jobs.HandleList)
}
