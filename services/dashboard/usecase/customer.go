package usecase

import (
	"context"
	"dashboard/domain"
	"time"
)

type customerUC struct {
	customerRepo domain.CustomerRepo
	TimeOut      time.Duration
}

func NewCustomerUseCase(repo domain.CustomerRepo, timeOut time.Duration) domain.CustomerUseCase {
	return &customerUC{
		customerRepo: repo,
		TimeOut:      timeOut,
	}
}

func (cUC *customerUC) FetchCustomersUC(ctx context.Context) (*[]domain.CustomerField, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	customers, err := cUC.customerRepo.FetchCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (cUC *customerUC) FetchFilteredCustomersUC(ctx context.Context, query string) (*[]domain.CustomerRow, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	customers, err := cUC.customerRepo.FetchFilteredCustomers(ctx, query)
	if err != nil {
		return nil, err
	}
	return customers, nil
}
