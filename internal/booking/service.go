package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
)

// Service owns the banquet booking flow. Create and update share the
// same pricing, discount and status functions; neither flow carries its
// own copy of the rules.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// --------------------------------------------------
// Create booking
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, b *Booking, sess core.Session) (*Booking, error) {
	if errs := Validate(b); errs != nil {
		return nil, errs
	}

	now := s.now()

	b.Discount = ClampDiscount(sess.Role, b.RatePlan, b.Discount)
	s.applyQuote(b)

	b.StatusHistory = NewHistory(now)
	b.StatusHistory = ApplyAdvance(b.StatusHistory, b.Advance, now)
	b.BookingStatus = CurrentStatus(b.StatusHistory)

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.StaffEditCount = 0
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// --------------------------------------------------
// Get booking (flags folded from the full history)
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Booking, StatusFlags, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, StatusFlags{}, err
	}
	return b, FoldFlags(b.StatusHistory), nil
}

func (s *Service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

// --------------------------------------------------
// Update booking
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id string, proposed *Booking, sess core.Session) (*Booking, error) {
	prior, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := Validate(proposed); errs != nil {
		return nil, errs
	}

	now := s.now()

	menuChanged := MenuChanged(prior.CategorizedMenu, proposed.CategorizedMenu)
	decision := EvaluateMenuEdit(sess.Role, prior.StaffEditCount, menuChanged)

	updated := *prior
	updated.Name = proposed.Name
	updated.Number = proposed.Number
	updated.Email = proposed.Email
	updated.StartDate = proposed.StartDate
	updated.Pax = proposed.Pax
	updated.RatePlan = proposed.RatePlan
	updated.FoodType = proposed.FoodType
	updated.GSTPercent = proposed.GSTPercent
	updated.Discount = ClampDiscount(sess.Role, proposed.RatePlan, proposed.Discount)
	updated.Advance = proposed.Advance

	if decision.IncludeMenu {
		updated.CategorizedMenu = proposed.CategorizedMenu
	} else {
		updated.CategorizedMenu = prior.CategorizedMenu
	}
	updated.StaffEditCount = decision.EditCount

	// Edits to any field other than the advance make a non-confirmed
	// booking Tentative; a positive advance confirms it.
	if detailsChanged(prior, &updated) || menuChanged {
		updated.StatusHistory = ApplyEdit(updated.StatusHistory, now)
	}
	updated.StatusHistory = ApplyAdvance(updated.StatusHistory, updated.Advance, now)
	updated.BookingStatus = CurrentStatus(updated.StatusHistory)

	s.applyQuote(&updated)
	updated.UpdatedAt = now

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// applyQuote recomputes the derived money fields. When no quote can be
// produced the totals are cleared, not defaulted.
func (s *Service) applyQuote(b *Booking) {
	quote, ok := ComputeQuote(b.FoodType, b.RatePlan, b.Pax, b.GSTPercent, b.Discount)
	if !ok {
		b.RatePerPax = 0
		b.Total = 0
		b.Balance = 0
		return
	}
	b.RatePerPax = quote.RatePerPax
	b.Total = quote.Total
	b.Balance = round2(quote.Total - b.Advance)
}

func detailsChanged(prev, next *Booking) bool {
	if prev.Name != next.Name ||
		prev.Number != next.Number ||
		prev.Email != next.Email ||
		prev.StartDate != next.StartDate ||
		prev.Pax != next.Pax ||
		prev.RatePlan != next.RatePlan ||
		prev.FoodType != next.FoodType ||
		prev.Discount != next.Discount {
		return true
	}
	if (prev.GSTPercent == nil) != (next.GSTPercent == nil) {
		return true
	}
	if prev.GSTPercent != nil && *prev.GSTPercent != *next.GSTPercent {
		return true
	}
	return false
}
