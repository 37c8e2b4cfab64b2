package delivery

import (
	"dashboard/config"
	"dashboard/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type invoiceHandler struct {
	iuc domain.InvoiceUseCase
}

func NewInvoiceDelivery(app *fiber.App, uc domain.InvoiceUseCase) {
	handler := &invoiceHandler{
		iuc: uc,
	}

	route := app.Group("/invoice")

	route.Get("/revenue", handler.deliveryGetRevenue)
	route.Get("/latest", handler.deliveryGetLatestInvoices)
	route.Get("/cards", handler.deliveryGetCardData)
	route.Get("/get_all", handler.deliveryGetFilteredInvoices)
	route.Get("/pages", handler.deliveryGetInvoicesPages)
	route.Get("/get/:id", handler.deliveryGetInvoiceByID)
	route.Post("/insert", handler.deliveryInsertInvoice)
	route.Put("/modify/:id", handler.deliveryModifyInvoice)
	route.Delete("/rm/:id", handler.deliveryDeleteInvoice)
}

func (ih *invoiceHandler) deliveryGetRevenue(c *fiber.Ctx) error {
	revenues, err := ih.iuc.FetchRevenueUC(c.Context())
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetRevenue")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get revenue data",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetRevenue")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Revenue retrieved successfully",
		"data":    revenues,
	})
}

func (ih *invoiceHandler) deliveryGetLatestInvoices(c *fiber.Ctx) error {
	invoices, err := ih.iuc.FetchLatestInvoicesUC(c.Context())
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetLatestInvoices")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get latest invoices",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetLatestInvoices")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Latest invoices retrieved successfully",
		"data":    invoices,
	})
}

func (ih *invoiceHandler) deliveryGetCardData(c *fiber.Ctx) error {
	cardData, err := ih.iuc.FetchCardDataUC(c.Context())
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetCardData")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get card data",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetCardData")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Card data retrieved successfully",
		"data":    cardData,
	})
}

func (ih *invoiceHandler) deliveryGetFilteredInvoices(c *fiber.Ctx) error {
	query := c.Query("query")
	page := c.QueryInt("page", 1)

	invoices, err := ih.iuc.FetchFilteredInvoicesUC(c.Context(), query, page)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetFilteredInvoices")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get invoices",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetFilteredInvoices")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoices retrieved successfully",
		"data":    invoices,
	})
}

func (ih *invoiceHandler) deliveryGetInvoicesPages(c *fiber.Ctx) error {
	query := c.Query("query")

	totalPages, err := ih.iuc.FetchInvoicesPagesUC(c.Context(), query)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetInvoicesPages")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get total number of invoices",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetInvoicesPages")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoice pages retrieved successfully",
		"data":    totalPages,
	})
}

func (ih *invoiceHandler) deliveryGetInvoiceByID(c *fiber.Ctx) error {
	id := c.Params("id")

	invoice, err := ih.iuc.GetInvoiceByIDUC(c.Context(), id)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetInvoiceByID")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get invoice",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetInvoiceByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoice retrieved successfully",
		"data":    invoice,
	})
}

func (ih *invoiceHandler) deliveryInsertInvoice(c *fiber.Ctx) error {
	var payload domain.InvoicePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryInsertInvoice")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryInsertInvoice")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Validation failed",
		})
	}

	if err := ih.iuc.CreateInvoiceUC(c.Context(), &payload); err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryInsertInvoice")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create invoice",
		})
	}

	config.PrintLogInfo(fiber.StatusCreated, "deliveryInsertInvoice")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice created successfully",
	})
}

func (ih *invoiceHandler) deliveryModifyInvoice(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload domain.InvoicePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryModifyInvoice")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "deliveryModifyInvoice")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Validation failed",
		})
	}

	if err := ih.iuc.UpdateInvoiceUC(c.Context(), id, &payload); err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryModifyInvoice")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update invoice",
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryModifyInvoice")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoice updated successfully",
	})
}

func (ih *invoiceHandler) deliveryDeleteInvoice(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ih.iuc.DeleteInvoiceUC(c.Context(), id); err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryDeleteInvoice")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete invoice",
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryDeleteInvoice")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoice deleted successfully",
	})
}
