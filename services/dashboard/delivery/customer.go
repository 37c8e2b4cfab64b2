package delivery

import (
	"dashboard/config"
	"dashboard/domain"

	"github.com/gofiber/fiber/v2"
)

type customerHandler struct {
	cuc domain.CustomerUseCase
}

func NewCustomerDelivery(app *fiber.App, uc domain.CustomerUseCase) {
	handler := &customerHandler{
		cuc: uc,
	}

	route := app.Group("/customer")

	route.Get("/get_all", handler.deliveryGetAllCustomer)
	route.Get("/filtered", handler.deliveryGetFilteredCustomers)
}

func (ch *customerHandler) deliveryGetAllCustomer(c *fiber.Ctx) error {
	customers, err := ch.cuc.FetchCustomersUC(c.Context())
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetAllCustomer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get all customers",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetAllCustomer")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Customers retrieved successfully",
		"data":    customers,
	})
}

func (ch *customerHandler) deliveryGetFilteredCustomers(c *fiber.Ctx) error {
	query := c.Query("query")

	customers, err := ch.cuc.FetchFilteredCustomersUC(c.Context(), query)
	if err != nil {
		config.PrintLogInfo(fiber.StatusInternalServerError, "deliveryGetFilteredCustomers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get customer table",
			"data":    nil,
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "deliveryGetFilteredCustomers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Customer table retrieved successfully",
		"data":    customers,
	})
}
