package domain

import "time"

// Client is a wellness client tracked by the practice.
type Client struct {
	ID              string
	Name            string
	Email           string
	AvatarKey       string
	LastVisit       *time.Time
	NextAppointment *time.Time
	HealthProtocol  string
	AdherenceScore  float64
	ProgressScore   float64
	CreatedAt       time.Time
}
