// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Local-mode schema. These models exist only so the development gateway
// has tables matching the hosted backend; the domain packages never
// touch gorm directly.

type productRow struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Title           string    `gorm:"not null;size:255"`
	Description     string    `gorm:"type:text"`
	Price           int64     `gorm:"not null"`
	WholesalePrice  *int64    ``
	WholesaleMinQty int       `gorm:"default:0"`
	Stock           int       `gorm:"default:0"`
	CategoryID      string    `gorm:"index;size:36"`
	ImageURL        string    `gorm:"size:512"`
	IsFeatured      bool      `gorm:"default:false"`
	IsTrending      bool      `gorm:"default:false"`
	CreatedAt       time.Time ``
}

type categoryRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null;size:100"`
	CreatedAt time.Time ``
}

type orderRow struct {
	ID              string    `gorm:"primaryKey;size:36"`
	UserID          string    `gorm:"not null;index;size:36"`
	TotalAmount     int64     `gorm:"not null"`
	PaymentMethod   string    `gorm:"not null;size:50"`
	PaymentStatus   string    `gorm:"not null;default:'pending';size:20"`
	Status          string    `gorm:"not null;default:'pending';size:20"`
	ShippingAddress string    `gorm:"not null;size:255"`
	ShippingCity    string    `gorm:"not null;size:100"`
	ContactPhone    string    `gorm:"not null;size:20"`
	PaymentPhone    string    `gorm:"size:20"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time ``
}

type orderItemRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	OrderID   string    `gorm:"not null;index;size:36"`
	ProductID string    `gorm:"not null;index;size:36"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	CreatedAt time.Time ``
}

type profileRow struct {
	ID          string    `gorm:"primaryKey;size:36"`
	FullName    string    `gorm:"size:255"`
	Phone       string    `gorm:"size:20"`
	IsWholesale bool      `gorm:"default:false"`
	CreatedAt   time.Time ``
}

type wishlistRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;index;size:36"`
	ProductID string    `gorm:"not null;index;size:36"`
	CreatedAt time.Time ``
}

type reviewRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;index;size:36"`
	ProductID string    `gorm:"not null;index;size:36"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time ``
}

type promotionRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Title     string    `gorm:"size:255"`
	ImageURL  string    `gorm:"size:512"`
	IsActive  bool      `gorm:"default:true"`
	StartDate time.Time ``
	EndDate   time.Time ``
	CreatedAt time.Time ``
}

func (productRow) TableName() string   { return "products" }
func (categoryRow) TableName() string  { return "categories" }
func (orderRow) TableName() string     { return "orders" }
func (orderItemRow) TableName() string { return "order_items" }
func (profileRow) TableName() string   { return "profiles" }
func (wishlistRow) TableName() string  { return "wishlist" }
func (reviewRow) TableName() string    { return "reviews" }
func (promotionRow) TableName() string { return "promotions" }

// Migration handles database schema migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration runner
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations migrates the local-mode tables
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database migrations...")

	err := m.db.AutoMigrate(
		&categoryRow{},
		&productRow{},
		&orderRow{},
		&orderItemRow{},
		&profileRow{},
		&wishlistRow{},
		&reviewRow{},
		&promotionRow{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// SeedInitialData inserts sample catalog data for development
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&productRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if count > 0 {
		return nil // Already seeded
	}

	log.Println("🌱 Seeding initial catalog data...")

	category := categoryRow{ID: "c0000000-0000-0000-0000-000000000001", Name: "Beverages", CreatedAt: time.Now().UTC()}
	if err := m.db.Create(&category).Error; err != nil {
		return fmt.Errorf("failed to seed category: %w", err)
	}

	wholesale := int64(90000)
	products := []productRow{
		{
			ID:              "p0000000-0000-0000-0000-000000000001",
			Title:           "Mineral Water 24-pack",
			Price:           100000,
			WholesalePrice:  &wholesale,
			WholesaleMinQty: 10,
			Stock:           250,
			CategoryID:      category.ID,
			IsFeatured:      true,
			CreatedAt:       time.Now().UTC(),
		},
		{
			ID:         "p0000000-0000-0000-0000-000000000002",
			Title:      "Instant Coffee 500g",
			Price:      45000,
			Stock:      80,
			CategoryID: category.ID,
			IsTrending: true,
			CreatedAt:  time.Now().UTC(),
		},
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Seeding completed")
	return nil
}
