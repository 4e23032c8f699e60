package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"
)

// Kind identifies a transactional email template
type Kind string

const (
	KindBookingReceived  Kind = "booking_received"
	KindBookingConfirmed Kind = "booking_confirmed"
)

// defaultFrontendURL backs the footer link when FRONTEND_URL is not set
const defaultFrontendURL = "https://optimrental.ch"

// Details carries the booking fields rendered into both templates
type Details struct {
	VehicleName string
	Date        string
	Hours       int
	TotalPrice  float64
}

var (
	baseTemplate *template.Template
	templates    map[Kind]*template.Template
)

func init() {
	baseTemplate = template.Must(template.New("base").Parse(BaseTemplate))
	templates = map[Kind]*template.Template{
		KindBookingReceived:  template.Must(template.New(string(KindBookingReceived)).Parse(BookingReceivedTemplate)),
		KindBookingConfirmed: template.Must(template.New(string(KindBookingConfirmed)).Parse(BookingConfirmedTemplate)),
	}
}

// Subject returns the subject line for a notification kind
func Subject(kind Kind, vehicleName string) string {
	switch kind {
	case KindBookingConfirmed:
		return fmt.Sprintf("Booking Confirmed: %s - Optimrental", vehicleName)
	default:
		return fmt.Sprintf("Booking Request Received - %s", vehicleName)
	}
}

// Render maps a notification kind and booking details to a subject line and
// HTML body. Deterministic for identical inputs apart from the copyright
// year in the footer.
func Render(kind Kind, d Details) (subject, html string, err error) {
	return renderWithURL(kind, d, defaultFrontendURL)
}

func renderWithURL(kind Kind, d Details, frontendURL string) (subject, html string, err error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown email kind: %s", kind)
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, d); err != nil {
		return "", "", err
	}

	var htmlBuf bytes.Buffer
	if err := baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content":     template.HTML(contentBuf.String()),
		"Details":     d,
		"Year":        time.Now().Year(),
		"FrontendURL": frontendURL,
	}); err != nil {
		return "", "", err
	}

	return Subject(kind, d.VehicleName), htmlBuf.String(), nil
}

// Sender is the transport used by the booking services
type Sender interface {
	SendBookingReceived(ctx context.Context, to, toName string, d Details) error
	SendBookingConfirmed(ctx context.Context, to, toName string, d Details) error
}

// Service sends rendered booking emails. Sends are synchronous: the booking
// flows treat a failed notification as advisory and log it themselves.
type Service struct {
	client      *Client
	frontendURL string
}

// NewService creates email service
func NewService(config Config) *Service {
	frontendURL := config.FrontendURL
	if frontendURL == "" {
		frontendURL = defaultFrontendURL
	}
	return &Service{
		client:      NewClient(config),
		frontendURL: frontendURL,
	}
}

func (s *Service) send(ctx context.Context, to, toName string, kind Kind, d Details) error {
	subject, html, err := renderWithURL(kind, d, s.frontendURL)
	if err != nil {
		return err
	}

	return s.client.Send(ctx, &Message{
		To:          to,
		ToName:      toName,
		Subject:     subject,
		HTMLContent: html,
	})
}

// SendBookingReceived sends the intake acknowledgement
func (s *Service) SendBookingReceived(ctx context.Context, to, toName string, d Details) error {
	return s.send(ctx, to, toName, KindBookingReceived, d)
}

// SendBookingConfirmed sends the confirmation notification
func (s *Service) SendBookingConfirmed(ctx context.Context, to, toName string, d Details) error {
	return s.send(ctx, to, toName, KindBookingConfirmed, d)
}
