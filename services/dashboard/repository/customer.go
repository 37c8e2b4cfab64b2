package repository

import (
	"context"
	"dashboard/domain"
	"dashboard/utils"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type customerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(database *pgxpool.Pool) domain.CustomerRepo {
	return &customerRepository{
		db: database,
	}
}

func (cr *customerRepository) FetchCustomers(ctx context.Context) (*[]domain.CustomerField, error) {
	query := `
		SELECT id, name
		FROM customers
		ORDER BY name ASC;
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch all customers")
	}
	defer rows.Close()

	var customers []domain.CustomerField
	for rows.Next() {
		var customer domain.CustomerField
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			log.Errorf("Database error: %v", err)
			return nil, errors.New("failed to fetch all customers")
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch all customers")
	}

	return &customers, nil
}

func (cr *customerRepository) FetchFilteredCustomers(ctx context.Context, query string) (*[]domain.CustomerRow, error) {
	statement := `
		SELECT
		customers.id, customers.name, customers.email, customers.image_url,
		COUNT(invoices.id) AS total_invoices,
		COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE
		customers.name ILIKE $1 OR
		customers.email ILIKE $1
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC;
	`

	rows, err := cr.db.Query(ctx, statement, "%"+query+"%")
	if err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch customer table")
	}
	defer rows.Close()

	var customers []domain.CustomerRow
	for rows.Next() {
		var customer domain.CustomerRow
		var totalPending, totalPaid int64

		err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL,
			&customer.TotalInvoices, &totalPending, &totalPaid)
		if err != nil {
			log.Errorf("Database error: %v", err)
			return nil, errors.New("failed to fetch customer table")
		}

		customer.TotalPending = utils.FormatCurrency(totalPending)
		customer.TotalPaid = utils.FormatCurrency(totalPaid)
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch customer table")
	}

	return &customers, nil
}
