package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/priyansh911911/ashokacrm-sub000/internal/auth"
	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
	"github.com/priyansh911911/ashokacrm-sub000/internal/cash"
	"github.com/priyansh911911/ashokacrm-sub000/internal/dashboard"
	"github.com/priyansh911911/ashokacrm-sub000/internal/db"
	"github.com/priyansh911911/ashokacrm-sub000/internal/invoice"
	"github.com/priyansh911911/ashokacrm-sub000/internal/menu"
	"github.com/priyansh911911/ashokacrm-sub000/internal/reservation"
	"github.com/priyansh911911/ashokacrm-sub000/internal/room"
	"github.com/priyansh911911/ashokacrm-sub000/internal/router"
	"github.com/priyansh911911/ashokacrm-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	var archive invoice.Archive
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archive = r2Client
	} else {
		log.Println("R2_ENDPOINT not set, invoice archival disabled")
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	bookingRepo := booking.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	cashRepo := cash.NewPostgresRepository(pgDB)
	reservationRepo := reservation.NewPostgresRepository(pgDB)
	roomRepo := room.NewPostgresRepository(pgDB)
	orderRepo := dashboard.NewPostgresOrderRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	bookingService := booking.NewService(bookingRepo)
	menuService := menu.NewService(menuRepo)
	cashService := cash.NewService(cashRepo)
	reservationService := reservation.NewService(reservationRepo)
	dashboardService := dashboard.NewService(roomRepo, reservationRepo, bookingRepo, orderRepo)
	invoiceService := invoice.NewService(bookingRepo, archive)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Auth:        auth.NewHandler(authService),
		Booking:     booking.NewHandler(bookingService),
		Menu:        menu.NewHandler(menuService),
		Cash:        cash.NewHandler(cashService),
		Reservation: reservation.NewHandler(reservationService),
		Room:        room.NewHandler(roomRepo),
		Dashboard:   dashboard.NewHandler(dashboardService),
		Invoice:     invoice.NewHandler(invoiceService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
