package customer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookify/models"
	"bookify/utils"
)

func (s *DefaultCustomerService) Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	c := models.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DefaultCustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.NewNotFound("customer")
	}
	return c, nil
}

func (s *DefaultCustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultCustomerService) Update(ctx context.Context, id string, in UpdateCustomerInput) (*models.Customer, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *DefaultCustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
