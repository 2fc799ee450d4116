package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/dto"
	"placement-portal/helper"
	"placement-portal/internal/middleware"
	"placement-portal/internal/models"
)

// CreateDrive godoc
// @Summary Schedule a placement drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param drive body dto.CreateDriveRequest true "Drive"
// @Success 201 {object} models.PlacementDrive
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/placement-drives [post]
func CreateDrive(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	var req dto.CreateDriveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	companyIDs, err := parseOIDs(req.CompanyIDs)
	if err != nil {
		return badRequest(c, "invalid company id in companyIds")
	}

	ctx, cancel := reqCtx()
	defer cancel()

	now := time.Now().UTC()
	drive := models.PlacementDrive{
		Title:                  req.Title,
		Description:            req.Description,
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		Venue:                  req.Venue,
		ParticipatingCompanies: companyIDs,
		EligibilityCriteria: models.DriveCriteria{
			MinCGPA:  req.Criteria.MinCGPA,
			Branches: req.Criteria.Branches,
			Backlogs: req.Criteria.Backlogs,
		},
		CreatedBy: uid,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := drives.Create(ctx, &drive); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(drive)
}

func parseOIDs(raw []string) ([]bson.ObjectID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]bson.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := bson.ObjectIDFromHex(r)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// ListDrives godoc
// @Summary List placement drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only scheduled or ongoing drives"
// @Success 200 {array} models.PlacementDrive
// @Router /api/placement-drives [get]
func ListDrives(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	if c.QueryBool("active") {
		items, err := drives.Active(ctx, time.Now().UTC())
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(items)
	}

	items, err := drives.All(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// DriveDetails godoc
// @Summary One placement drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drive ID"
// @Success 200 {object} models.PlacementDrive
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/placement-drives/{id} [get]
func DriveDetails(c *fiber.Ctx) error {
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	drive, err := drives.FindByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(drive)
}

// UpdateDrive godoc
// @Summary Edit a placement drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drive ID"
// @Param drive body dto.UpdateDriveRequest true "Fields to change"
// @Success 200 {object} models.PlacementDrive
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/placement-drives/{id} [put]
func UpdateDrive(c *fiber.Ctx) error {
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateDriveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.StartDate != nil {
		set["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		set["end_date"] = *req.EndDate
	}
	if req.Venue != nil {
		set["venue"] = *req.Venue
	}
	if req.Criteria != nil {
		set["eligibility_criteria"] = models.DriveCriteria{
			MinCGPA:  req.Criteria.MinCGPA,
			Branches: req.Criteria.Branches,
			Backlogs: req.Criteria.Backlogs,
		}
	}
	if req.CompanyIDs != nil {
		ids, err := parseOIDs(req.CompanyIDs)
		if err != nil {
			return badRequest(c, "invalid company id in companyIds")
		}
		set["participating_companies"] = ids
	}
	if req.Status != nil {
		set["status"] = models.DriveStatus(*req.Status)
	}
	if len(set) == 0 {
		return badRequest(c, "nothing to update")
	}

	ctx, cancel := reqCtx()
	defer cancel()

	drive, err := drives.Update(ctx, id, set)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(drive)
}

// DeleteDrive godoc
// @Summary Delete a placement drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drive ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/placement-drives/{id} [delete]
func DeleteDrive(c *fiber.Ctx) error {
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := drives.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "drive deleted"})
}
