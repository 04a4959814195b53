package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
)

// BookingReader is the slice of the booking repository the invoice
// renderer needs.
type BookingReader interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

// Archive stores rendered invoice snapshots. Optional: with no archive
// configured, invoices are still rendered, just not stored.
type Archive interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	bookings BookingReader
	archive  Archive
	now      func() time.Time
}

func NewService(bookings BookingReader, archive Archive) *Service {
	return &Service{bookings: bookings, archive: archive, now: time.Now}
}

// Render builds the checkout invoice for a booking. A missing booking
// propagates as an error; a failed archive upload is logged and the
// invoice is returned anyway.
func (s *Service) Render(ctx context.Context, bookingID string) (*Invoice, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		InvoiceNo:   invoiceNo(b.ID),
		BookingID:   b.ID,
		GuestName:   b.Name,
		Number:      b.Number,
		EventDate:   b.StartDate,
		FoodType:    b.FoodType,
		RatePlan:    b.RatePlan,
		Menu:        b.CategorizedMenu,
		Discount:    b.Discount,
		GSTPercent:  b.GSTPercent,
		Total:       b.Total,
		Advance:     b.Advance,
		BalanceDue:  b.Balance,
		GeneratedAt: s.now(),
	}
	inv.Items = []LineItem{
		{
			Description: fmt.Sprintf("Banquet package (%s / %s)", b.FoodType, b.RatePlan),
			Quantity:    b.Pax,
			Rate:        b.RatePerPax,
			Amount:      b.Total,
		},
	}

	if s.archive != nil {
		s.archiveInvoice(ctx, inv)
	}
	return inv, nil
}

func (s *Service) archiveInvoice(ctx context.Context, inv *Invoice) {
	doc, err := json.Marshal(inv)
	if err != nil {
		log.Printf("invoice: marshal for archive failed: %v", err)
		return
	}

	key := fmt.Sprintf("invoices/%s/%s.json", inv.BookingID, inv.InvoiceNo)
	url, err := s.archive.Upload(ctx, key, bytes.NewReader(doc), "application/json")
	if err != nil {
		log.Printf("invoice: archive upload failed: %v", err)
		return
	}
	inv.ArchiveURL = url
}

func invoiceNo(bookingID string) string {
	ref := strings.ReplaceAll(bookingID, "-", "")
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return "INV-" + strings.ToUpper(ref)
}
