package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ListingCreatedEmailData holds data for the new venue/artist email.
type ListingCreatedEmailData struct {
	Entity string // "Venue" or "Artist"
	ID     int64
	Name   string
	City   string
	State  string
}

// ShowListedEmailData holds data for the new show email.
type ShowListedEmailData struct {
	ShowID     int64
	VenueID    int64
	VenueName  string
	ArtistID   int64
	ArtistName string
	StartTime  time.Time
}

// BookingNotifier tells the booking desk about new listings.
type BookingNotifier interface {
	ListingCreated(ctx context.Context, data *ListingCreatedEmailData) error
	ShowListed(ctx context.Context, data *ShowListedEmailData) error
}
