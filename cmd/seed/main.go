package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"repairshop/internal/database"
	"repairshop/internal/domain"
	"repairshop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "repairshop.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	settings := repository.NewSettingRepository(db)
	rates := repository.NewServiceRateRepository(db)
	products := repository.NewProductRepository(db)

	// ================== ADMIN ==================
	log.Println("Creating admin user...")

	adminEmail := envOr("ADMIN_EMAIL", "admin@repairshop.local")
	adminPassword := envOr("ADMIN_PASSWORD", "admin123")
	hash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err := users.Upsert(ctx, &domain.User{
		Email:        adminEmail,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}); err != nil {
		log.Fatal("Admin upsert failed:", err)
	}
	log.Printf("Admin ready: %s / %s", adminEmail, adminPassword)

	// ================== SETTINGS ==================
	log.Println("Seeding settings...")

	defaults := []struct {
		key, value, description string
	}{
		{"shop_name", "Sri Raam Electricals", "Shop name shown on receipts and invoices"},
		{"shop_phone", "+91 98765 43210", "Primary contact number"},
		{"shop_address", "Main Road, Tiruchengode", "Shop address printed on invoices"},
		{"working_hours", "9:00 AM - 8:00 PM", "Displayed on the public site"},
		{"low_stock_threshold", "5", "Stock level that flags a product on the dashboard"},
	}
	for _, s := range defaults {
		if err := settings.Upsert(ctx, s.key, s.value, s.description); err != nil {
			log.Fatal("Setting upsert failed:", err)
		}
	}

	// ================== SERVICE RATES ==================
	log.Println("Seeding service rates...")

	seedRates := []domain.ServiceRate{
		{DeviceType: "Ceiling Fan", ServiceName: "Winding Replacement", BasePrice: 450, Description: "Full copper rewinding", IsActive: true},
		{DeviceType: "Ceiling Fan", ServiceName: "Bearing Replacement", BasePrice: 150, IsActive: true},
		{DeviceType: "Mixer Grinder", ServiceName: "Motor Overhaul", BasePrice: 350, IsActive: true},
		{DeviceType: "Water Pump", ServiceName: "Winding Replacement", BasePrice: 1200, Description: "Single phase up to 1 HP", IsActive: true},
		{DeviceType: "Iron Box", ServiceName: "Element Replacement", BasePrice: 120, IsActive: true},
	}
	for i := range seedRates {
		if err := rates.Create(ctx, &seedRates[i]); err != nil {
			log.Fatal("Service rate insert failed:", err)
		}
	}

	// ================== PRODUCTS ==================
	log.Println("Seeding products...")

	seedProducts := []domain.Product{
		{Name: "Crompton HS Plus 1200mm", Category: domain.CategoryFans, Brand: "Crompton", Price: 2650, Stock: 8, IsFeatured: true, IsActive: true},
		{Name: "Usha Mist Air Icy 400mm", Category: domain.CategoryFans, Brand: "Usha", Price: 2100, Stock: 4, IsActive: true},
		{Name: "Preethi Blue Leaf 750W", Category: domain.CategoryAppliances, Brand: "Preethi", Price: 4850, Stock: 6, IsFeatured: true, IsActive: true},
		{Name: "Fan Regulator 4-Step", Category: domain.CategoryAccessories, Price: 180, Stock: 25, IsActive: true},
		{Name: "Capacitor 2.5 MFD", Category: domain.CategorySpareParts, Price: 45, Stock: 3, IsActive: true},
	}
	for i := range seedProducts {
		if err := products.Create(ctx, &seedProducts[i]); err != nil {
			log.Fatal("Product insert failed:", err)
		}
	}

	log.Println("Seed complete.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
