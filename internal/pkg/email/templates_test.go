package email

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestRenderBookingReceived(t *testing.T) {
	d := Details{
		VehicleName: "Audi RS6 Avant",
		Date:        "2026-03-14",
		Hours:       6,
		TotalPrice:  540,
	}

	subject, html, err := Render(KindBookingReceived, d)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if subject != "Booking Request Received - Audi RS6 Avant" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{
		"Booking Received",
		"Audi RS6 Avant",
		"2026-03-14",
		"6 Hours",
		"540 CHF",
		"Swiss Premium Fleet",
		fmt.Sprintf("&copy; %d Optimrental Switzerland", time.Now().Year()),
	} {
		if !strings.Contains(html, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderBookingConfirmed(t *testing.T) {
	d := Details{
		VehicleName: "Audi RS6 Avant",
		Date:        "2026-03-14",
		Hours:       6,
		TotalPrice:  540,
	}

	subject, html, err := Render(KindBookingConfirmed, d)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if subject != "Booking Confirmed: Audi RS6 Avant - Optimrental" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(html, "Booking Confirmed") {
		t.Error("body missing confirmation heading")
	}
	if !strings.Contains(html, "officially confirmed") {
		t.Error("body missing confirmation copy")
	}
}

func TestRenderDeterministic(t *testing.T) {
	d := Details{VehicleName: "BMW X5", Date: "2026-03-14", Hours: 2, TotalPrice: 100}

	_, first, err := Render(KindBookingReceived, d)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	_, second, err := Render(KindBookingReceived, d)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if first != second {
		t.Error("identical inputs produced different bodies")
	}
}

func TestRenderFooterLink(t *testing.T) {
	d := Details{VehicleName: "BMW X5", Date: "2026-03-14", Hours: 2, TotalPrice: 100}

	_, html, err := Render(KindBookingReceived, d)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(html, `href="https://optimrental.ch"`) {
		t.Error("default footer link missing")
	}

	_, html, err = renderWithURL(KindBookingReceived, d, "https://staging.optimrental.ch")
	if err != nil {
		t.Fatalf("renderWithURL returned error: %v", err)
	}
	if !strings.Contains(html, `href="https://staging.optimrental.ch"`) {
		t.Error("configured footer link missing")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	if _, _, err := Render(Kind("password_reset"), Details{}); err == nil {
		t.Error("expected error for unknown kind")
	}
}
