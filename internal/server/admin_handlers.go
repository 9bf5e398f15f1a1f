package server

import (
	"fmt"

	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddGender handles POST /add_gender. Admin only.
func (s *Server) AddGender(c *fiber.Ctx) error {
	if _, err := s.requireAdmin(c); err != nil {
		return respondError(c, err)
	}

	var req struct {
		Gender string `json:"gender"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Gender == "" {
		return respondError(c, models.NewValidationError("A gender label is required!"))
	}

	gender := &models.Gender{Label: req.Gender}
	if err := s.genderRepo.Create(c.Context(), gender); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"gender": gender,
	})
}

// ListGenders handles GET /add_gender. Admin only.
func (s *Server) ListGenders(c *fiber.Ctx) error {
	if _, err := s.requireAdmin(c); err != nil {
		return respondError(c, err)
	}

	genders, err := s.genderRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"genders": genders,
	})
}

// controlPanelSection is one moderation bucket on the control panel.
type controlPanelSection struct {
	Title       string              `json:"title"`
	Compliments []models.Compliment `json:"compliments"`
}

// ControlPanel handles GET/POST /control_panel. A POST applies the submitted
// approvals and removals first; both methods then answer with the four fixed
// moderation buckets and the unapproved queue. Admin only.
func (s *Server) ControlPanel(c *fiber.Ctx) error {
	if _, err := s.requireAdmin(c); err != nil {
		return respondError(c, err)
	}
	ctx := c.Context()

	msg := ""
	if c.Method() == fiber.MethodPost {
		var req struct {
			Remove  []uint `json:"remove"`
			Approve []uint `json:"approve"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, models.NewValidationError("Invalid request body"))
		}

		// Unknown ids are silently ignored; the message counts the
		// submitted ids, not the affected rows.
		if _, err := s.complimentRepo.DeleteByIDs(ctx, req.Remove); err != nil {
			return respondError(c, err)
		}
		if _, err := s.complimentRepo.ApproveByIDs(ctx, req.Approve); err != nil {
			return respondError(c, err)
		}
		msg = fmt.Sprintf("%d compliments removed successfully!\n%d compliments approved!",
			len(req.Remove), len(req.Approve))
	}

	sections := make([]controlPanelSection, 0, 4)
	for _, bucket := range []struct {
		title  string
		gender string
	}{
		{"Male Compliments", "Male"},
		{"Female Compliments", "Female"},
		{"Any Gender Compliments", models.GenderAny},
		{"Personal Compliments", ""},
	} {
		var compliments []models.Compliment
		var err error
		if bucket.gender == "" {
			compliments, err = s.complimentRepo.ListPersonal(ctx)
		} else {
			compliments, err = s.complimentRepo.ListByGender(ctx, bucket.gender)
		}
		if err != nil {
			return respondError(c, err)
		}
		sections = append(sections, controlPanelSection{
			Title:       bucket.title,
			Compliments: compliments,
		})
	}

	unapproved, err := s.complimentRepo.ListUnapproved(ctx)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{
		"sections":   sections,
		"unapproved": unapproved,
	}
	if msg != "" {
		resp["message"] = msg
	}
	return c.JSON(resp)
}
