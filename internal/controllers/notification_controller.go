package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/middleware"
)

// MyNotifications godoc
// @Summary List my notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications [get]
func MyNotifications(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	page, limit := pageParams(c)

	ctx, cancel := reqCtx()
	defer cancel()

	items, total, err := notifications.List(ctx, uid, page, limit, c.QueryBool("unread"))
	if err != nil {
		return fail(c, err)
	}
	unread, err := notifications.CountUnread(ctx, uid)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  items,
		"total":  total,
		"unread": unread,
		"page":   page,
		"limit":  limit,
	})
}

// MarkNotificationsRead godoc
// @Summary Mark specific notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "ids: array of notification IDs"
// @Success 200 {object} dto.MessageResponse
// @Router /api/notifications/read [post]
func MarkNotificationsRead(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.IDs) == 0 {
		return badRequest(c, "ids is required")
	}

	ids := make([]bson.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return badRequest(c, "invalid notification id: "+raw)
		}
		ids = append(ids, id)
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := notifications.MarkRead(ctx, uid, ids); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "marked read"})
}

// MarkAllNotificationsRead godoc
// @Summary Mark all my notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /api/notifications/read-all [post]
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := notifications.MarkAllRead(ctx, uid); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "all notifications marked read"})
}

// DeleteNotification godoc
// @Summary Delete one of my notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/notifications/{id} [delete]
func DeleteNotification(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := notifications.Delete(ctx, uid, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "notification deleted"})
}
