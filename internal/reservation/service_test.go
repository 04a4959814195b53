package reservation

import (
	"context"
	"errors"
	"testing"
)

func validReservation() *Reservation {
	return &Reservation{
		GuestName: "A. Verma",
		Number:    "9812345678",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-03",
	}
}

func TestCreateTentativeWithoutAdvance(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	created, err := service.Create(context.Background(), validReservation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != StatusTentative {
		t.Errorf("expected Tentative, got %s", created.Status)
	}
	if created.GRCNo == "" {
		t.Errorf("expected generated GRC number")
	}
}

func TestCreateConfirmedWithAdvance(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	res := validReservation()
	res.Advance = 1000

	created, err := service.Create(context.Background(), res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != StatusConfirmed {
		t.Errorf("expected Confirmed, got %s", created.Status)
	}
}

func TestCreateMissingFields(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	res := validReservation()
	res.GuestName = "  "

	if _, err := service.Create(context.Background(), res); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	created, _ := service.Create(ctx, validReservation())

	cancelled, err := service.Cancel(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("expected Cancelled, got %s", cancelled.Status)
	}

	if _, err := service.Cancel(ctx, created.ID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("expected ErrAlreadyCancelled, got %v", err)
	}
}

func TestCancelMissingReservation(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.Cancel(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
