package server

import (
	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UpsertTheme handles POST /:slug/add_theme and POST /:slug/edit_theme.
// With no existing theme it creates one when at least one path is non-empty
// (both empty is a no-op); with an existing theme it overwrites both fields
// unconditionally, including clearing them.
func (s *Server) UpsertTheme(c *fiber.Ctx) error {
	_, complimentee, err := s.requireComplimenteeOwner(c, c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		ThemePath string `json:"theme_path"`
		SongPath  string `json:"song_path"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	theme, err := s.themeRepo.GetByComplimentee(c.Context(), complimentee.ID)
	if err != nil {
		return respondError(c, err)
	}

	if theme == nil {
		if req.ThemePath == "" && req.SongPath == "" {
			return c.JSON(fiber.Map{
				"theme": nil,
				"next":  "/" + complimentee.Slug + "/add_compliment",
			})
		}
		theme = &models.Theme{
			ComplimenteeID: complimentee.ID,
			ThemePath:      req.ThemePath,
			SongPath:       req.SongPath,
		}
		if err := s.themeRepo.Create(c.Context(), theme); err != nil {
			return respondError(c, err)
		}
	} else {
		theme.ThemePath = req.ThemePath
		theme.SongPath = req.SongPath
		if err := s.themeRepo.Update(c.Context(), theme); err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Theme added successfully!",
		"theme":   theme,
		"next":    "/" + complimentee.Slug + "/add_compliment",
	})
}

// AddThemeInfo handles GET /:slug/add_theme
func (s *Server) AddThemeInfo(c *fiber.Ctx) error {
	_, complimentee, err := s.requireComplimenteeOwner(c, c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"name": complimentee.Name,
	})
}

// EditThemeInfo handles GET /:slug/edit_theme, returning the current values
// so the edit form can pre-fill. With no theme yet the caller belongs on the
// add_theme step instead.
func (s *Server) EditThemeInfo(c *fiber.Ctx) error {
	_, complimentee, err := s.requireComplimenteeOwner(c, c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	theme, err := s.themeRepo.GetByComplimentee(c.Context(), complimentee.ID)
	if err != nil {
		return respondError(c, err)
	}
	if theme == nil {
		return respondError(c, models.NewNotFoundError("Theme", complimentee.Slug))
	}

	return c.JSON(fiber.Map{
		"name":  complimentee.Name,
		"theme": theme,
	})
}
