package customer

import (
	"context"

	customerRepo "bookify/database/repository/customer"
	"bookify/models"
)

// CreateCustomerInput is the payload for registering a customer.
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerInput carries optional mutations; nil fields are left
// untouched.
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CustomerService manages customer records.
type CustomerService interface {
	Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error)
	Get(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}
