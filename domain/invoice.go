package domain

import (
	"context"
	"time"
)

type Invoice struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

// InvoiceRow is one row of the filtered invoice listing, joined with the
// owning customer.
type InvoiceRow struct {
	ID       string    `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// LatestInvoice carries the amount already formatted as a currency string;
// the integer-cents value never leaves the repository.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoiceForm is the edit-form shape: amount in display units, not cents.
type InvoiceForm struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type InvoicePayload struct {
	CustomerID string  `json:"customer_id" valid:"required~Customer is required"`
	Amount     float64 `json:"amount" valid:"required~Amount is required"`
	Status     string  `json:"status" valid:"required~Status is required,in(pending|paid)~Invalid status"`
}

type CardData struct {
	NumberOfInvoices     int    `json:"number_of_invoices"`
	NumberOfCustomers    int    `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type InvoiceRepo interface {
	FetchRevenue(ctx context.Context) (*[]Revenue, error)
	FetchLatestInvoices(ctx context.Context) (*[]LatestInvoice, error)
	FetchCardData(ctx context.Context) (*CardData, error)
	FetchFilteredInvoices(ctx context.Context, query string, page int) (*[]InvoiceRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	GetInvoiceByID(ctx context.Context, id string) (*InvoiceForm, error)
	CreateInvoice(ctx context.Context, payload *InvoicePayload) error
	UpdateInvoice(ctx context.Context, id string, payload *InvoicePayload) error
	DeleteInvoice(ctx context.Context, id string) error
}

type InvoiceUseCase interface {
	FetchRevenueUC(ctx context.Context) (*[]Revenue, error)
	FetchLatestInvoicesUC(ctx context.Context) (*[]LatestInvoice, error)
	FetchCardDataUC(ctx context.Context) (*CardData, error)
	FetchFilteredInvoicesUC(ctx context.Context, query string, page int) (*[]InvoiceRow, error)
	FetchInvoicesPagesUC(ctx context.Context, query string) (int, error)
	GetInvoiceByIDUC(ctx context.Context, id string) (*InvoiceForm, error)
	CreateInvoiceUC(ctx context.Context, payload *InvoicePayload) error
	UpdateInvoiceUC(ctx context.Context, id string, payload *InvoicePayload) error
	DeleteInvoiceUC(ctx context.Context, id string) error
}
