package server

import (
	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComplimentee handles POST /add_complimentee
func (s *Server) AddComplimentee(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Name     string `json:"name"`
		URL      string `json:"url"`
		Greeting string `json:"greeting"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.URL == "" {
		return respondError(c, models.NewValidationError("Name and url are required"))
	}

	existing, err := s.complimenteeRepo.GetBySlug(c.Context(), req.URL)
	if err != nil {
		return respondError(c, err)
	}
	if existing != nil {
		return respondError(c, models.NewConflictError("This url is already taken!"))
	}

	complimentee := &models.Complimentee{
		Name:     req.Name,
		Slug:     req.URL,
		Greeting: req.Greeting,
		OwnerID:  user.ID,
	}

	if err := s.complimenteeRepo.Create(c.Context(), complimentee); err != nil {
		return respondError(c, err)
	}

	// Creating a page leads straight to the theme step.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      req.Name + " added successfully!",
		"complimentee": complimentee,
		"next":         "/" + complimentee.Slug + "/add_theme",
	})
}

// AddComplimenteeInfo handles GET /add_complimentee
func (s *Server) AddComplimenteeInfo(c *fiber.Ctx) error {
	if _, err := s.requireUser(c); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Add a complimentee",
		"user":    s.identity(c).DisplayName(),
	})
}

// ListComplimentees handles GET /list_complimentees, listing the caller's
// own complimentees with their themes.
func (s *Server) ListComplimentees(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return respondError(c, err)
	}

	complimentees, err := s.complimenteeRepo.ListByOwner(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"complimentees": complimentees,
	})
}
