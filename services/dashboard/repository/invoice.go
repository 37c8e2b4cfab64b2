package repository

import (
	"context"
	"dashboard/domain"
	"dashboard/utils"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const invoicesPerPage = 6

// Pages are 1-indexed.
func pageOffset(page int) int {
	return (page - 1) * invoicesPerPage
}

func totalPageCount(count int) int {
	return (count + invoicesPerPage - 1) / invoicesPerPage
}

type invoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(database *pgxpool.Pool) domain.InvoiceRepo {
	return &invoiceRepository{
		db: database,
	}
}

func (ir *invoiceRepository) FetchRevenue(ctx context.Context) (*[]domain.Revenue, error) {
	query := `SELECT month, revenue FROM revenue;`

	rows, err := ir.db.Query(ctx, query)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch revenue data")
	}
	defer rows.Close()

	var revenues []domain.Revenue
	for rows.Next() {
		var revenue domain.Revenue
		if err := rows.Scan(&revenue.Month, &revenue.Revenue); err != nil {
			log.Errorf("Database error: %v", err)
			return nil, errors.New("failed to fetch revenue data")
		}
		revenues = append(revenues, revenue)
	}

	if err = rows.Err(); err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch revenue data")
	}

	return &revenues, nil
}

func (ir *invoiceRepository) FetchLatestInvoices(ctx context.Context) (*[]domain.LatestInvoice, error) {
	query := `
		SELECT invoices.amount, customers.name, customers.image_url, customers.email, invoices.id
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT 5;
	`

	rows, err := ir.db.Query(ctx, query)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch the latest invoices")
	}
	defer rows.Close()

	var invoices []domain.LatestInvoice
	for rows.Next() {
		var invoice domain.LatestInvoice
		var amount int64

		if err := rows.Scan(&amount, &invoice.Name, &invoice.ImageURL, &invoice.Email, &invoice.ID); err != nil {
			log.Errorf("Database error: %v", err)
			return nil, errors.New("failed to fetch the latest invoices")
		}

		invoice.Amount = utils.FormatCurrency(amount)
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch the latest invoices")
	}

	return &invoices, nil
}

// FetchCardData launches the three aggregate reads together. The counts and
// the status sums are independent, so each goroutine fills its own slot and
// the only coordination is waiting for all of them.
func (ir *invoiceRepository) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	var wg sync.WaitGroup
	errChan := make(chan error, 3)

	var invoiceCount, customerCount int
	var paidSum, pendingSum int64

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := ir.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices;`).Scan(&invoiceCount); err != nil {
			errChan <- fmt.Errorf("could not count invoices: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := ir.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&customerCount); err != nil {
			errChan <- fmt.Errorf("could not count customers: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		query := `
			SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
			FROM invoices;
		`
		if err := ir.db.QueryRow(ctx, query).Scan(&paidSum, &pendingSum); err != nil {
			errChan <- fmt.Errorf("could not sum invoice amounts: %v", err)
		}
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch card data")
	}

	return &domain.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    utils.FormatCurrency(paidSum),
		TotalPendingInvoices: utils.FormatCurrency(pendingSum),
	}, nil
}

func (ir *invoiceRepository) FetchFilteredInvoices(ctx context.Context, query string, page int) (*[]domain.InvoiceRow, error) {
	offset := pageOffset(page)

	statement := `
		SELECT
		invoices.id, invoices.amount, invoices.date, invoices.status,
		customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE
		customers.name ILIKE $1 OR
		customers.email ILIKE $1 OR
		invoices.amount::text ILIKE $1 OR
		invoices.date::text ILIKE $1 OR
		invoices.status ILIKE $1
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := ir.db.Query(ctx, statement, "%"+query+"%", invoicesPerPage, offset)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch invoices")
	}
	defer rows.Close()

	var invoices []domain.InvoiceRow
	for rows.Next() {
		var invoice domain.InvoiceRow
		err := rows.Scan(&invoice.ID, &invoice.Amount, &invoice.Date, &invoice.Status,
			&invoice.Name, &invoice.Email, &invoice.ImageURL)
		if err != nil {
			log.Errorf("Database error: %v", err)
			return nil, errors.New("failed to fetch invoices")
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch invoices")
	}

	return &invoices, nil
}

func (ir *invoiceRepository) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	statement := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE
		customers.name ILIKE $1 OR
		customers.email ILIKE $1 OR
		invoices.amount::text ILIKE $1 OR
		invoices.date::text ILIKE $1 OR
		invoices.status ILIKE $1;
	`

	var count int
	if err := ir.db.QueryRow(ctx, statement, "%"+query+"%").Scan(&count); err != nil {
		log.Errorf("Database error: %v", err)
		return 0, errors.New("failed to fetch total number of invoices")
	}

	return totalPageCount(count), nil
}

func (ir *invoiceRepository) GetInvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error) {
	query := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status
		FROM invoices
		WHERE invoices.id = $1;
	`

	var invoice domain.InvoiceForm
	var amountInCents int64

	err := ir.db.QueryRow(ctx, query, id).Scan(&invoice.ID, &invoice.CustomerID, &amountInCents, &invoice.Status)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("invoice not found")
		}
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch invoice")
	}

	// Convert amount from cents to display units
	invoice.Amount = float64(amountInCents) / 100

	return &invoice, nil
}

func (ir *invoiceRepository) CreateInvoice(ctx context.Context, payload *domain.InvoicePayload) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4);
	`

	amountInCents := int64(math.Round(payload.Amount * 100))
	date := time.Now().Format("2006-01-02")

	_, err := ir.db.Exec(ctx, query, payload.CustomerID, amountInCents, payload.Status, date)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return errors.New("failed to create invoice")
	}

	return nil
}

func (ir *invoiceRepository) UpdateInvoice(ctx context.Context, id string, payload *domain.InvoicePayload) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4;
	`

	amountInCents := int64(math.Round(payload.Amount * 100))

	_, err := ir.db.Exec(ctx, query, payload.CustomerID, amountInCents, payload.Status, id)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return errors.New("failed to update invoice")
	}

	return nil
}

func (ir *invoiceRepository) DeleteInvoice(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1;`

	_, err := ir.db.Exec(ctx, query, id)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return errors.New("failed to delete invoice")
	}

	return nil
}
