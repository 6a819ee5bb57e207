package provider

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// Register creates the provider and provisions an empty availability
// profile, so the provider exists in both collections from day one and
// is simply fully unavailable until hours are configured.
func (s *DefaultProviderService) Register(ctx context.Context, in CreateProviderInput) (*models.Provider, error) {
	p := models.Provider{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Specialization:   in.Specialization,
		AppointmentTypes: in.AppointmentTypes,
		Active:           true,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Availability.Replace(ctx, models.AvailabilityProfile{ProviderID: p.ID}); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("provider registered", zap.String("providerID", p.ID))
	return &p, nil
}

func (s *DefaultProviderService) Get(ctx context.Context, id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewNotFound("provider")
	}
	return p, nil
}

func (s *DefaultProviderService) List(ctx context.Context, activeOnly bool) ([]models.Provider, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *DefaultProviderService) Update(ctx context.Context, id string, in UpdateProviderInput) (*models.Provider, error) {
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
	if in.Specialization != nil {
		fields["specialization"] = *in.Specialization
	}
	if in.AppointmentTypes != nil {
		fields["appointment_types"] = *in.AppointmentTypes
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
		// Active flag and offered types feed slot-search candidacy.
		utils.BumpSlotVersion(ctx, s.Cache)
	}
	return s.Get(ctx, id)
}

// Deactivate soft-deletes: the provider stops matching searches but
// existing appointment rows keep their reference.
func (s *DefaultProviderService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Deactivate(ctx, id); err != nil {
		return err
	}
	utils.BumpSlotVersion(ctx, s.Cache)
	return nil
}
