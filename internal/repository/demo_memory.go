package repository

import (
	"context"
	"time"

	"github.com/armahcreates/iwil/internal/domain"
)

// Demo-mode fixtures served when no database is configured. The values
// mirror the sample roster shipped with the product UI.

type memoryClientRepository struct {
	clients []domain.Client
}

// NewMemoryClientRepository returns the demo client list.
func NewMemoryClientRepository() ClientRepository {
	return &memoryClientRepository{clients: demoClients()}
}

func (r *memoryClientRepository) EnsureSchema(_ context.Context) error { return nil }

func (r *memoryClientRepository) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

func (r *memoryClientRepository) Insert(_ context.Context, client *domain.Client) error {
	r.clients = append(r.clients, *client)
	return nil
}

type memoryReportRepository struct {
	reports []domain.Report
}

// NewMemoryReportRepository returns the demo report list.
func NewMemoryReportRepository() ReportRepository {
	return &memoryReportRepository{reports: demoReports()}
}

func (r *memoryReportRepository) EnsureSchema(_ context.Context) error { return nil }

func (r *memoryReportRepository) List(_ context.Context) ([]domain.Report, error) {
	out := make([]domain.Report, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

func (r *memoryReportRepository) Insert(_ context.Context, report *domain.Report) error {
	r.reports = append(r.reports, *report)
	return nil
}

func demoClients() []domain.Client {
	return []domain.Client{
		{
			ID:              "1",
			Name:            "Sarah Johnson",
			Email:           "sarah.johnson@email.com",
			LastVisit:       ts("2024-12-15T00:00:00Z"),
			NextAppointment: ts("2024-12-30T00:00:00Z"),
			HealthProtocol:  "Metabolic Optimization Protocol",
			AdherenceScore:  92.5,
			ProgressScore:   87.3,
		},
		{
			ID:              "2",
			Name:            "Michael Chen",
			Email:           "michael.chen@email.com",
			LastVisit:       ts("2024-12-18T00:00:00Z"),
			NextAppointment: ts("2025-01-02T00:00:00Z"),
			HealthProtocol:  "Athletic Performance Enhancement",
			AdherenceScore:  89.2,
			ProgressScore:   91.8,
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Rodriguez",
			Email:           "emily.rodriguez@email.com",
			LastVisit:       ts("2024-12-12T00:00:00Z"),
			NextAppointment: ts("2024-12-28T00:00:00Z"),
			HealthProtocol:  "Hormone Balance Program",
			AdherenceScore:  95.8,
			ProgressScore:   93.4,
		},
	}
}

func demoReports() []domain.Report {
	return []domain.Report{
		{
			ID:                   "R001",
			ClientID:             "1",
			ClientName:           "Sarah Johnson",
			Type:                 "monthly",
			Status:               "review",
			Deadline:             ts("2024-12-25T00:00:00Z"),
			CreatedAt:            *ts("2024-12-01T00:00:00Z"),
			LastModified:         *ts("2024-12-20T00:00:00Z"),
			TemplateName:         "Comprehensive Wellness Assessment",
			CompletionPercentage: 85,
		},
		{
			ID:                   "R002",
			ClientID:             "2",
			ClientName:           "Michael Chen",
			Type:                 "weekly",
			Status:               "sent",
			Deadline:             ts("2024-12-22T00:00:00Z"),
			CreatedAt:            *ts("2024-12-15T00:00:00Z"),
			LastModified:         *ts("2024-12-21T00:00:00Z"),
			TemplateName:         "Athletic Performance Review",
			CompletionPercentage: 100,
		},
	}
}

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}
