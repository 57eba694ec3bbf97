package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// baseURL rebuilds the request's scheme://host origin, used to mint
// externally resolvable file URLs.
func baseURL(c *fiber.Ctx) string {
	return c.Protocol() + "://" + c.Hostname()
}
