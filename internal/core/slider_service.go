package core

import (
	"context"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

type sliderService struct {
	sliders db.SliderRepository
}

// NewSliderService creates a SliderService over the slider repository.
func NewSliderService(sliders db.SliderRepository) SliderService {
	return &sliderService{sliders: sliders}
}

func (s *sliderService) List(ctx context.Context) ([]models.Slider, error) {
	return s.sliders.List(ctx)
}

func (s *sliderService) Create(ctx context.Context, req models.SliderRequest) (string, error) {
	return s.sliders.Create(ctx, &models.Slider{
		Title: req.Title,
		Image: req.Image,
		Link:  req.Link,
	})
}

func (s *sliderService) Delete(ctx context.Context, id string) error {
	return s.sliders.Delete(ctx, id)
}
