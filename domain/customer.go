package domain

import "context"

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerField is the id/name pair used by the invoice form dropdown.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerRow aggregates per-customer invoice totals; the pending/paid sums
// are formatted as currency strings at the read boundary.
type CustomerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

type CustomerRepo interface {
	FetchCustomers(ctx context.Context) (*[]CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) (*[]CustomerRow, error)
}

type CustomerUseCase interface {
	FetchCustomersUC(ctx context.Context) (*[]CustomerField, error)
	FetchFilteredCustomersUC(ctx context.Context, query string) (*[]CustomerRow, error)
}
