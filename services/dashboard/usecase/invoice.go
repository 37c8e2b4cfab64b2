package usecase

import (
	"context"
	"dashboard/domain"
	"time"
)

type invoiceUC struct {
	invoiceRepo domain.InvoiceRepo
	TimeOut     time.Duration
}

func NewInvoiceUseCase(repo domain.InvoiceRepo, timeOut time.Duration) domain.InvoiceUseCase {
	return &invoiceUC{
		invoiceRepo: repo,
		TimeOut:     timeOut,
	}
}

func (iUC *invoiceUC) FetchRevenueUC(ctx context.Context) (*[]domain.Revenue, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	revenues, err := iUC.invoiceRepo.FetchRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return revenues, nil
}

func (iUC *invoiceUC) FetchLatestInvoicesUC(ctx context.Context) (*[]domain.LatestInvoice, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	invoices, err := iUC.invoiceRepo.FetchLatestInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (iUC *invoiceUC) FetchCardDataUC(ctx context.Context) (*domain.CardData, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	cardData, err := iUC.invoiceRepo.FetchCardData(ctx)
	if err != nil {
		return nil, err
	}
	return cardData, nil
}

func (iUC *invoiceUC) FetchFilteredInvoicesUC(ctx context.Context, query string, page int) (*[]domain.InvoiceRow, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	if page < 1 {
		page = 1
	}

	invoices, err := iUC.invoiceRepo.FetchFilteredInvoices(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (iUC *invoiceUC) FetchInvoicesPagesUC(ctx context.Context, query string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	totalPages, err := iUC.invoiceRepo.FetchInvoicesPages(ctx, query)
	if err != nil {
		return 0, err
	}
	return totalPages, nil
}

func (iUC *invoiceUC) GetInvoiceByIDUC(ctx context.Context, id string) (*domain.InvoiceForm, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	invoice, err := iUC.invoiceRepo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (iUC *invoiceUC) CreateInvoiceUC(ctx context.Context, payload *domain.InvoicePayload) error {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	err := iUC.invoiceRepo.CreateInvoice(ctx, payload)
	if err != nil {
		return err
	}
	return nil
}

func (iUC *invoiceUC) UpdateInvoiceUC(ctx context.Context, id string, payload *domain.InvoicePayload) error {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	err := iUC.invoiceRepo.UpdateInvoice(ctx, id, payload)
	if err != nil {
		return err
	}
	return nil
}

func (iUC *invoiceUC) DeleteInvoiceUC(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, iUC.TimeOut)
	defer cancel()

	err := iUC.invoiceRepo.DeleteInvoice(ctx, id)
	if err != nil {
		return err
	}
	return nil
}
