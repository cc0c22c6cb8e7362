package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	tempDir, err := os.MkdirTemp("", "sqlite_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			first_name TEXT,
			last_name TEXT,
			phone TEXT,
			location_id TEXT,
			api_key TEXT,
			agency_name TEXT,
			role TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
		CREATE TABLE admin_settings (
			key TEXT PRIMARY KEY,
			pit_token TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
		CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			order_type TEXT,
			lead_quantity INTEGER,
			total_amount REAL NOT NULL,
			payment_status TEXT NOT NULL,
			payment_intent_id TEXT NOT NULL,
			customer_email TEXT,
			customer_name TEXT,
			customer_phone TEXT,
			business_name TEXT,
			business_address TEXT,
			business_city TEXT,
			business_state TEXT,
			business_zip TEXT,
			selected_states TEXT NOT NULL,
			selected_carriers TEXT NOT NULL,
			additional_carriers TEXT,
			api_key TEXT,
			target_location_id TEXT,
			status TEXT NOT NULL,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func stringPtr(s string) *string {
	return &s
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	user := models.NewUser("agent@example.com", models.RoleUser)
	user.FirstName = stringPtr("Jane")
	user.LastName = stringPtr("Smith")
	user.LocationID = stringPtr("loc_123")

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if retrieved.Email != user.Email {
		t.Errorf("Email = %s, want %s", retrieved.Email, user.Email)
	}
	if *retrieved.FirstName != "Jane" {
		t.Errorf("FirstName = %s, want Jane", *retrieved.FirstName)
	}
	if retrieved.Role != models.RoleUser {
		t.Errorf("Role = %s, want %s", retrieved.Role, models.RoleUser)
	}

	byEmail, err := repo.GetByEmail(ctx, "agent@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("GetByEmail() ID = %s, want %s", byEmail.ID, user.ID)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_GetRole(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	admin := models.NewUser("admin@example.com", models.RoleAdmin)
	if err := repo.Create(ctx, admin); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	role, err := repo.GetRole(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetRole() failed: %v", err)
	}
	if role != models.RoleAdmin {
		t.Errorf("GetRole() = %s, want %s", role, models.RoleAdmin)
	}

	if _, err := repo.GetRole(ctx, "missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetRole(missing) error = %v, want ErrNotFound", err)
	}
}

func TestAdminSettingRepository_PutAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewAdminSettingRepository(db, testLogger())
	ctx := context.Background()

	setting := &models.AdminSetting{
		Key:      models.SettingKeyPrivateToken,
		PITToken: "pit-secret-token",
	}
	if err := repo.Put(ctx, setting); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	retrieved, err := repo.Get(ctx, models.SettingKeyPrivateToken)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if retrieved.PITToken != "pit-secret-token" {
		t.Errorf("PITToken = %s, want pit-secret-token", retrieved.PITToken)
	}

	// Upsert replaces the stored token
	setting.PITToken = "pit-rotated"
	if err := repo.Put(ctx, setting); err != nil {
		t.Fatalf("Put() upsert failed: %v", err)
	}
	retrieved, err = repo.Get(ctx, models.SettingKeyPrivateToken)
	if err != nil {
		t.Fatalf("Get() after upsert failed: %v", err)
	}
	if retrieved.PITToken != "pit-rotated" {
		t.Errorf("PITToken after upsert = %s, want pit-rotated", retrieved.PITToken)
	}
}

func TestAdminSettingRepository_Get_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewAdminSettingRepository(db, testLogger())

	_, err := repo.Get(context.Background(), "missing_key")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	order := models.NewOrder("ACA", "pi_abc123", 499.00)
	order.OrderType = "exclusive"
	order.LeadQuantity = 100
	order.CustomerEmail = "buyer@example.com"
	order.CustomerName = "John Doe"
	order.SelectedStates = []string{"TX", "FL"}
	order.SelectedCarriers = []string{"Ambetter", "Oscar"}
	order.BusinessName = stringPtr("Acme Agency")

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if retrieved.PaymentIntentID != "pi_abc123" {
		t.Errorf("PaymentIntentID = %s, want pi_abc123", retrieved.PaymentIntentID)
	}
	if len(retrieved.SelectedStates) != 2 || retrieved.SelectedStates[0] != "TX" {
		t.Errorf("SelectedStates = %v, want [TX FL]", retrieved.SelectedStates)
	}
	if *retrieved.BusinessName != "Acme Agency" {
		t.Errorf("BusinessName = %s, want Acme Agency", *retrieved.BusinessName)
	}
	if retrieved.Status != models.OrderStatusPending {
		t.Errorf("Status = %s, want pending", retrieved.Status)
	}
}

func TestOrderRepository_NoDeduplication(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	first := models.NewOrder("ACA", "pi_same", 100)
	first.SelectedStates = []string{}
	first.SelectedCarriers = []string{}
	second := models.NewOrder("ACA", "pi_same", 100)
	second.SelectedStates = []string{}
	second.SelectedCarriers = []string{}

	if first.ID == second.ID {
		t.Fatal("two orders share an ID")
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create(first) failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create(second) failed: %v", err)
	}

	orders, err := repo.ListByPaymentIntent(ctx, "pi_same")
	if err != nil {
		t.Fatalf("ListByPaymentIntent() failed: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("len(orders) = %d, want 2 (no deduplication)", len(orders))
	}
}
