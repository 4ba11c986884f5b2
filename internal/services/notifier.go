package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishyarjun/fyyur/internal/domain"
)

type bookingNotifier struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	recipient string
	logger    *slog.Logger
}

// NewBookingNotifier returns a BookingNotifier that mails recipient using the
// given Mailer and template renderer. An empty recipient turns every call into
// a no-op.
func NewBookingNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipient string, logger *slog.Logger) domain.BookingNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingNotifier{mailer: mailer, renderer: renderer, recipient: recipient, logger: logger}
}

// ListingCreated sends the "listing_created" email for a new venue or artist.
func (n *bookingNotifier) ListingCreated(ctx context.Context, data *domain.ListingCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("listing created email data is nil")
	}
	return n.send(ctx, "listing_created", data)
}

// ShowListed sends the "show_listed" email for a new show.
func (n *bookingNotifier) ShowListed(ctx context.Context, data *domain.ShowListedEmailData) error {
	if data == nil {
		return fmt.Errorf("show listed email data is nil")
	}
	return n.send(ctx, "show_listed", data)
}

func (n *bookingNotifier) send(ctx context.Context, template string, data any) error {
	if n.recipient == "" {
		return nil
	}
	subject, htmlBody, textBody, err := n.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := n.mailer.Send(ctx, n.recipient, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	n.logger.InfoContext(ctx, "booking email sent", "template", template, "to", n.recipient)
	return nil
}
