package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/priyansh911911/ashokacrm-sub000/internal/auth"
	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
	"github.com/priyansh911911/ashokacrm-sub000/internal/cash"
	"github.com/priyansh911911/ashokacrm-sub000/internal/dashboard"
	"github.com/priyansh911911/ashokacrm-sub000/internal/invoice"
	"github.com/priyansh911911/ashokacrm-sub000/internal/menu"
	"github.com/priyansh911911/ashokacrm-sub000/internal/reservation"
	"github.com/priyansh911911/ashokacrm-sub000/internal/room"
)

type noOrders struct{}

func (noOrders) ListByDepartment(ctx context.Context, department string) ([]dashboard.ServiceOrder, error) {
	return nil, nil
}

func newTestRouter() *gin.Engine {
	bookingRepo := booking.NewInMemoryRepository()
	reservationRepo := reservation.NewInMemoryRepository()
	roomRepo := room.NewInMemoryRepository()

	return NewRouter(Deps{
		Auth:        auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository())),
		Booking:     booking.NewHandler(booking.NewService(bookingRepo)),
		Menu:        menu.NewHandler(menu.NewService(menu.NewInMemoryRepository())),
		Cash:        cash.NewHandler(cash.NewService(cash.NewInMemoryRepository())),
		Reservation: reservation.NewHandler(reservation.NewService(reservationRepo)),
		Room:        room.NewHandler(roomRepo),
		Dashboard:   dashboard.NewHandler(dashboard.NewService(roomRepo, reservationRepo, bookingRepo, noOrders{})),
		Invoice:     invoice.NewHandler(invoice.NewService(bookingRepo, nil)),
	})
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newTestRouter()

	for _, path := range []string{
		"/api/bookings",
		"/api/menu-items",
		"/api/dashboard/summary",
		"/api/cash-transactions/cash-at-reception",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status 401, got %d", path, w.Code)
		}
	}
}
