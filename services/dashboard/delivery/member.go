package delivery

import (
	"dashboard/config"
	"dashboard/domain"

	"github.com/gofiber/fiber/v2"
)

type memberHandler struct {
	muc domain.MemberUseCase
}

func NewMemberDelivery(app *fiber.App, uc domain.MemberUseCase) {
	handler := &memberHandler{
		muc: uc,
	}

	route := app.Group("/member")

	route.Get("/get_all", handler.deliveryGetAllMember)
	route.Get("/get/:id", handler.deliveryGetMemberByID)
	route.Post("/insert", handler.deliveryInsertMember)
	route.Put("/modify/:id", handler.deliveryModifyMember)
	route.Delete("/rm/:id", handler.deliveryDeleteMember)
}

func (mh *memberHandler) deliveryGetAllMember(c *fiber.Ctx) error {
	filter := domain.MemberFilter{
		Kana:   c.Query("kana"),
		AgeMin: c.Query("ageMin"),
		AgeMax: c.Query("ageMax"),
		Tel:    c.Query("tel"),
	}

	members, err := mh.muc.FetchMembersUC(c.Context(), filter)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetAllMember")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get all members",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetAllMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Members retrieved successfully",
		"data":    members,
	})
}

func (mh *memberHandler) deliveryGetMemberByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryGetMemberByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member ID",
		})
	}

	member, err := mh.muc.GetMemberByIDUC(c.Context(), id)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetMemberByID")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get member",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetMemberByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member retrieved successfully",
		"data":    member,
	})
}

func (mh *memberHandler) deliveryInsertMember(c *fiber.Ctx) error {
	var form domain.MemberForm
	if err := c.BodyParser(&form); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryInsertMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	fieldErrors, err := mh.muc.CreateMemberUC(c.Context(), &form)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryInsertMember")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create member",
		})
	}
	if len(fieldErrors) > 0 {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryInsertMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  fieldErrors,
			"message": "Validation failed",
		})
	}

	config.PrintLogInfo(fiber.StatusCreated, "deliveryInsertMember")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Member created successfully",
	})
}

func (mh *memberHandler) deliveryModifyMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryModifyMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member ID",
		})
	}

	var form domain.MemberForm
	if err := c.BodyParser(&form); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryModifyMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	fieldErrors, err := mh.muc.UpdateMemberUC(c.Context(), id, &form)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryModifyMember")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update member",
		})
	}
	if len(fieldErrors) > 0 {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryModifyMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  fieldErrors,
			"message": "Validation failed",
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryModifyMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member updated successfully",
	})
}

func (mh *memberHandler) deliveryDeleteMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryDeleteMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member ID",
		})
	}

	if err := mh.muc.DeleteMemberUC(c.Context(), id); err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryDeleteMember")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete member",
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryDeleteMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member deleted successfully",
	})
}
