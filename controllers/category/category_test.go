package categoryControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// Deleting a category must never delete its products; their category
// reference is cleared instead.
func TestDeleteCategoryKeepsProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	category := models.Category{Name: "bouquets"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	product := models.Product{
		Name:       "spring-mix",
		Price:      decimal.NewFromInt(18),
		CategoryID: &category.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	r := gin.New()
	r.DELETE("/categories/:id", DeleteCategory(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/categories/1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("product was deleted along with its category: %v", err)
	}
	if reloaded.CategoryID != nil {
		t.Errorf("expected category reference to be cleared, got %v", *reloaded.CategoryID)
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 0 {
		t.Errorf("expected category to be deleted, found %d", count)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	r.DELETE("/categories/:id", DeleteCategory(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/categories/99", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
