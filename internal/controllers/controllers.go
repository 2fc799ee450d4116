package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"placement-portal/config"
	"placement-portal/internal/apperr"
	"placement-portal/internal/approval"
	"placement-portal/internal/middleware"
	"placement-portal/internal/repository"
	"placement-portal/internal/services"
	"placement-portal/utils"
)

// Package-wide handler state, wired once from main.
var (
	users         *repository.UserRepo
	companies     *repository.CompanyRepo
	jobs          *repository.JobRepo
	students      *repository.StudentRepo
	applications  *repository.ApplicationRepo
	approvalLogs  *repository.ApprovalLogRepo
	notifications *repository.NotificationRepo
	drives        *repository.DriveRepo
	dispatcher    *services.Dispatcher
	workflow      *approval.Workflow
)

// Setup builds the repositories, mailer and approval workflow on top of the
// connected database. Must run before any route is registered.
func Setup(db *mongo.Database, cfg config.Config) {
	users = repository.NewUserRepo(db)
	companies = repository.NewCompanyRepo(db)
	jobs = repository.NewJobRepo(db)
	students = repository.NewStudentRepo(db)
	applications = repository.NewApplicationRepo(db)
	approvalLogs = repository.NewApprovalLogRepo(db)
	notifications = repository.NewNotificationRepo(db)
	drives = repository.NewDriveRepo(db)

	dispatcher = services.NewDispatcher(notifications, services.NewMailer(cfg))
	workflow = approval.NewWorkflow(companies, jobs, approvalLogs, users, dispatcher)
}

func reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// fail translates an error into the JSON error envelope. Unclassified errors
// come back as 500 with a generic message so driver internals never leak.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Println("internal error:", err)
		msg = "something went wrong"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// actorFrom builds the approval actor out of the JWT locals.
func actorFrom(c *fiber.Ctx) (approval.Actor, error) {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return approval.Actor{}, err
	}
	return approval.Actor{ID: uid, Role: middleware.Role(c)}, nil
}

func paramOID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	return utils.ParamOID(c, name)
}

// pageParams reads ?page= and ?limit= with the defaults the frontend uses.
func pageParams(c *fiber.Ctx) (page, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
