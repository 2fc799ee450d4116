package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID returns the authenticated user's id from Locals as an ObjectID.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	raw, _ := c.Locals("user_id").(string)
	oid, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusUnauthorized, "invalid user id in token")
	}
	return oid, nil
}

// Role returns the authenticated user's role from Locals.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
