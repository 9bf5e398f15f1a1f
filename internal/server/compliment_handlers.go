package server

import (
	"math/rand"

	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddGenderCompliment handles POST /add_compliment. Anonymous submissions
// are allowed; only admin submissions skip the moderation queue.
func (s *Server) AddGenderCompliment(c *fiber.Ctx) error {
	var req struct {
		Compliment string `json:"compliment"`
		Gender     string `json:"gender"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Compliment == "" {
		return respondError(c, models.NewValidationError("A compliment is required!"))
	}
	if err := s.validateGenderLabel(c, req.Gender); err != nil {
		return respondError(c, err)
	}

	compliment := &models.Compliment{
		Text:     req.Compliment,
		Gender:   &req.Gender,
		Approved: s.identity(c).IsAdmin(),
	}

	if err := s.complimentRepo.Create(c.Context(), compliment); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Compliment successfully added!",
		"compliment": compliment,
	})
}

// AddComplimentInfo handles GET /add_compliment with the gender choices.
func (s *Server) AddComplimentInfo(c *fiber.Ctx) error {
	labels, err := s.genderLabels(c, true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"genders": labels,
	})
}

// AddPersonalCompliment handles POST /:slug/add_compliment. Personal
// compliments bypass moderation entirely.
func (s *Server) AddPersonalCompliment(c *fiber.Ctx) error {
	_, complimentee, err := s.requireComplimenteeOwner(c, c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Compliment string `json:"compliment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Compliment == "" {
		return respondError(c, models.NewValidationError("A compliment is required!"))
	}

	compliment := &models.Compliment{
		Text:           req.Compliment,
		ComplimenteeID: &complimentee.ID,
		Approved:       true,
	}

	if err := s.complimentRepo.Create(c.Context(), compliment); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Compliment successfully added!",
		"compliment": compliment,
	})
}

// AddPersonalComplimentInfo handles GET /:slug/add_compliment
func (s *Server) AddPersonalComplimentInfo(c *fiber.Ctx) error {
	_, complimentee, err := s.requireComplimenteeOwner(c, c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"name": complimentee.Name,
		"url":  complimentee.Slug,
	})
}

// GetInfo handles GET /get_info, pre-filling the authenticated user's name.
func (s *Server) GetInfo(c *fiber.Ctx) error {
	labels, err := s.genderLabels(c, false)
	if err != nil {
		return respondError(c, err)
	}

	name := ""
	if id := s.identity(c); !id.IsGuest() {
		name = id.User.Name
	}

	return c.JSON(fiber.Map{
		"name":    name,
		"genders": labels,
	})
}

// SubmitInfo handles POST /get_info, forwarding to the compliment display.
func (s *Server) SubmitInfo(c *fiber.Ctx) error {
	var req struct {
		Name   string `json:"name"`
		Gender string `json:"gender"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	return s.renderGenderCompliments(c, req.Gender, req.Name)
}

// ComplimentsByGender handles GET/POST /compliment/:gender/:name
func (s *Server) ComplimentsByGender(c *fiber.Ctx) error {
	return s.renderGenderCompliments(c, c.Params("gender"), c.Params("name"))
}

// renderGenderCompliments returns the approved pool for the gender plus the
// "Any" pool, freshly shuffled on every call.
func (s *Server) renderGenderCompliments(c *fiber.Ctx, gender, name string) error {
	if gender == "" || name == "" {
		return respondError(c, models.NewValidationError("Name and gender are required"))
	}

	compliments, err := s.complimentRepo.ListApprovedForGender(c.Context(), gender)
	if err != nil {
		return respondError(c, err)
	}

	rand.Shuffle(len(compliments), func(i, j int) {
		compliments[i], compliments[j] = compliments[j], compliments[i]
	})

	return c.JSON(fiber.Map{
		"name":        name,
		"compliments": compliments,
	})
}

// ComplimenteePage handles GET /compliment/:slug, the public page.
func (s *Server) ComplimenteePage(c *fiber.Ctx) error {
	complimentee, err := s.complimenteeRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	if complimentee == nil {
		return respondError(c, models.NewNotFoundError("Complimentee", c.Params("slug")))
	}

	compliments, err := s.complimentRepo.ListByComplimentee(c.Context(), complimentee.ID)
	if err != nil {
		return respondError(c, err)
	}
	if len(compliments) == 0 {
		// A page without compliments answers with a bare message, not an error status.
		return c.SendString("The name you provided is not in the database!")
	}

	theme, err := s.themeRepo.GetByComplimentee(c.Context(), complimentee.ID)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{
		"name":        complimentee.Name,
		"greeting":    complimentee.Greeting,
		"compliments": compliments,
	}
	if theme != nil {
		songPath, youtube := theme.EmbedSongPath()
		resp["theme"] = fiber.Map{
			"theme_path": theme.ThemePath,
			"song_path":  songPath,
			"youtube":    youtube,
		}
	}

	return c.JSON(resp)
}

// validateGenderLabel accepts the reserved "Any" label or any registered gender.
func (s *Server) validateGenderLabel(c *fiber.Ctx, label string) error {
	if label == "" {
		return models.NewValidationError("A gender is required!")
	}
	if label == models.GenderAny {
		return nil
	}
	gender, err := s.genderRepo.GetByLabel(c.Context(), label)
	if err != nil {
		return err
	}
	if gender == nil {
		return models.NewValidationError("Unknown gender: " + label)
	}
	return nil
}

// genderLabels lists registered gender labels, optionally with "Any".
func (s *Server) genderLabels(c *fiber.Ctx, includeAny bool) ([]string, error) {
	genders, err := s.genderRepo.List(c.Context())
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(genders)+1)
	for _, g := range genders {
		if !includeAny && g.Label == models.GenderAny {
			continue
		}
		labels = append(labels, g.Label)
	}
	if includeAny {
		found := false
		for _, l := range labels {
			if l == models.GenderAny {
				found = true
				break
			}
		}
		if !found {
			labels = append(labels, models.GenderAny)
		}
	}
	return labels, nil
}
