package dto

import (
	"fmt"
	"net/url"
	"time"

	"github.com/armahcreates/iwil/internal/domain"
)

// ClientResponse mirrors the client summary shape served to the UI.
type ClientResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Avatar          string     `json:"avatar"`
	LastVisit       *time.Time `json:"last_visit"`
	NextAppointment *time.Time `json:"next_appointment"`
	HealthProtocol  string     `json:"health_protocol"`
	AdherenceScore  float64    `json:"adherence_score"`
	ProgressScore   float64    `json:"progress_score"`
}

// NewClientResponse shapes a client, deriving the avatar URL: stored
// avatars are served through /api/avatars, everyone else gets a
// generated placeholder.
func NewClientResponse(client *domain.Client) ClientResponse {
	avatar := fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(client.Name))
	if client.AvatarKey != "" {
		avatar = "/api/avatars/" + client.AvatarKey
	}
	return ClientResponse{
		ID:              client.ID,
		Name:            client.Name,
		Email:           client.Email,
		Avatar:          avatar,
		LastVisit:       client.LastVisit,
		NextAppointment: client.NextAppointment,
		HealthProtocol:  client.HealthProtocol,
		AdherenceScore:  client.AdherenceScore,
		ProgressScore:   client.ProgressScore,
	}
}

// ReportResponse mirrors the report summary shape served to the UI.
type ReportResponse struct {
	ID                   string     `json:"id"`
	ClientID             string     `json:"client_id"`
	ClientName           string     `json:"client_name"`
	Type                 string     `json:"type"`
	Status               string     `json:"status"`
	Deadline             *time.Time `json:"deadline"`
	CreatedAt            time.Time  `json:"created_at"`
	LastModified         time.Time  `json:"last_modified"`
	TemplateName         string     `json:"template_name"`
	CompletionPercentage float64    `json:"completion_percentage"`
}

// NewReportResponse shapes a report summary.
func NewReportResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:                   report.ID,
		ClientID:             report.ClientID,
		ClientName:           report.ClientName,
		Type:                 report.Type,
		Status:               report.Status,
		Deadline:             report.Deadline,
		CreatedAt:            report.CreatedAt,
		LastModified:         report.LastModified,
		TemplateName:         report.TemplateName,
		CompletionPercentage: report.CompletionPercentage,
	}
}
