package core

import (
	"context"
	"time"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

type reportService struct {
	reports db.ReportRepository
}

// NewReportService creates a ReportService over the report repository.
func NewReportService(reports db.ReportRepository) ReportService {
	return &reportService{reports: reports}
}

func (s *reportService) Submit(ctx context.Context, userEmail string, req models.SubmitReportRequest) error {
	return s.reports.Create(ctx, &models.Report{
		ProductID: req.ProductID,
		UserEmail: userEmail,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	})
}

func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	return s.reports.List(ctx)
}
