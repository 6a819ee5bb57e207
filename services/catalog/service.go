package catalog

import (
	"context"

	"github.com/google/uuid"

	"bookify/models"
	"bookify/utils"
)

func (s *DefaultAppointmentTypeService) Create(ctx context.Context, in CreateAppointmentTypeInput) (*models.AppointmentType, error) {
	if in.DurationMinutes <= 0 {
		return nil, utils.NewInvalidInput("duration_minutes must be positive")
	}
	t := models.AppointmentType{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Color:           in.Color,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DefaultAppointmentTypeService) Get(ctx context.Context, id string) (*models.AppointmentType, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, utils.NewNotFound("appointment type")
	}
	return t, nil
}

func (s *DefaultAppointmentTypeService) List(ctx context.Context) ([]models.AppointmentType, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultAppointmentTypeService) Update(ctx context.Context, id string, in UpdateAppointmentTypeInput) (*models.AppointmentType, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.DurationMinutes != nil {
		if *in.DurationMinutes <= 0 {
			return nil, utils.NewInvalidInput("duration_minutes must be positive")
		}
		fields["duration_minutes"] = *in.DurationMinutes
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Color != nil {
		fields["color"] = *in.Color
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *DefaultAppointmentTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
