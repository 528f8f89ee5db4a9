package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"repairshop/internal/database"
	"repairshop/internal/events"
	"repairshop/internal/middleware"
	"repairshop/internal/modules/auth"
	"repairshop/internal/modules/billing"
	"repairshop/internal/modules/booking"
	"repairshop/internal/modules/catalog"
	"repairshop/internal/modules/contact"
	"repairshop/internal/modules/customer"
	"repairshop/internal/modules/dashboard"
	"repairshop/internal/modules/intake"
	"repairshop/internal/modules/track"
	"repairshop/internal/modules/warranty"
	jwtsvc "repairshop/internal/pkg/jwt"
	"repairshop/internal/pkg/sequence"
	"repairshop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	shop := intake.ShopInfo{
		Name:  envOr("SHOP_NAME", "Sri Raam Electricals"),
		Phone: os.Getenv("SHOP_PHONE"),
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	deviceRepo := repository.NewDeviceEntryRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	warrantyRepo := repository.NewWarrantyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	contactRepo := repository.NewContactRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	rateRepo := repository.NewServiceRateRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	userRepo := repository.NewUserRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := events.NewHub()
	defer hub.Close()
	sink := events.NewBroadcaster(hub)
	eventsHandler := events.NewHandler(hub)

	serials := sequence.NewResolver(
		sequence.SQLFunction(db, "generate_device_serial"),
		sequence.DeviceSerial,
	)
	invoiceNumbers := sequence.NewResolver(
		sequence.SQLFunction(db, "generate_invoice_number"),
		sequence.InvoiceNumber,
	)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	intakeHandler := intake.NewHandler(intake.NewService(deviceRepo, serials, sink), shop)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, sink), shop.Name)
	warrantyHandler := warranty.NewHandler(warranty.NewService(warrantyRepo))
	billingHandler := billing.NewHandler(
		billing.NewService(invoiceRepo, invoiceNumbers),
		billing.ShopInfo{Name: shop.Name, Phone: shop.Phone, Address: os.Getenv("SHOP_ADDRESS")},
	)
	trackHandler := track.NewHandler(track.NewService(deviceRepo, bookingRepo, warrantyRepo))
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, sink))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo, bookingRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(productRepo, rateRepo, settingRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(bookingRepo, deviceRepo, productRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: the storefront and tracking page hit these without a token
		authHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)
		trackHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j))
		{
			authHandler.RegisterAdminRoutes(admin)
			intakeHandler.RegisterRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
			warrantyHandler.RegisterRoutes(admin)
			billingHandler.RegisterRoutes(admin)
			contactHandler.RegisterAdminRoutes(admin)
			customerHandler.RegisterRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			dashboardHandler.RegisterRoutes(admin)
			eventsHandler.RegisterRoutes(admin)
		}
	}

	addr := ":" + envOr("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
