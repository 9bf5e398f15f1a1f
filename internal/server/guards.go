package server

import (
	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Guard helpers called at the top of handlers. Explicit calls keep the
// authorization decision visible at the call site.

// requireUser fails with Unauthorized for the guest.
func (s *Server) requireUser(c *fiber.Ctx) (*models.User, error) {
	id := s.identity(c)
	if id.IsGuest() {
		return nil, models.NewUnauthorizedError("You must be logged in to do that!")
	}
	return id.User, nil
}

// requireAdmin fails with Forbidden unless the caller is an authenticated admin.
func (s *Server) requireAdmin(c *fiber.Ctx) (*models.User, error) {
	id := s.identity(c)
	if !id.IsAdmin() {
		return nil, models.NewForbiddenError("You are not an admin!")
	}
	return id.User, nil
}

// requireComplimenteeOwner resolves the slug and fails with NotFound for an
// unknown complimentee or Forbidden when the caller does not own it. Mutating
// slug-keyed operations run through this gate.
func (s *Server) requireComplimenteeOwner(c *fiber.Ctx, slug string) (*models.User, *models.Complimentee, error) {
	user, err := s.requireUser(c)
	if err != nil {
		return nil, nil, err
	}

	complimentee, err := s.complimenteeRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		return nil, nil, err
	}
	if complimentee == nil {
		return nil, nil, models.NewNotFoundError("Complimentee", slug)
	}
	if complimentee.OwnerID != user.ID {
		return nil, nil, models.NewForbiddenError("You can not edit a complimentee you did not create!")
	}
	return user, complimentee, nil
}
