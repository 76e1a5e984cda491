package cartControllers

import (
	"sync"
	"testing"

	"github.com/luandz123/basket-fl-shop/apperrors"
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
	// one connection keeps the in-memory database alive and serializes access
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price string) *models.Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price %q: %v", price, err)
	}
	product := models.Product{Name: name, Price: p, Image: "/uploads/products/" + name + ".jpg"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return &product
}

func TestAddToCartMergesQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "red-roses", "12.50")

	if _, err := AddToCart(db, 1, product.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := AddToCart(db, 1, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if item.Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", item.Quantity)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ? AND product_id = ?", 1, product.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one cart row, got %d", count)
	}
}

func TestAddToCartValidation(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "tulips", "8.00")

	if _, err := AddToCart(db, 1, product.ID, 0); apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("expected validation error for zero quantity, got %v", err)
	}
	if _, err := AddToCart(db, 1, 9999, 1); apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("expected validation error for unknown product, got %v", err)
	}
}

// Concurrent adds on an existing row must not lose an update: the
// increment runs as quantity = quantity + ? in a single statement. The
// very first insert for a (user, product) pair is still a find-then-create
// and can race to two rows under real concurrency; sequential first add is
// assumed here.
func TestAddToCartConcurrentIncrements(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "lilies", "15.00")

	if _, err := AddToCart(db, 1, product.ID, 1); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := AddToCart(db, 1, product.ID, 1); err != nil {
				t.Errorf("concurrent add failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", 1, product.ID).First(&item).Error; err != nil {
		t.Fatalf("failed to fetch item: %v", err)
	}
	if item.Quantity != 3 {
		t.Errorf("expected quantity 3 after concurrent adds, got %d", item.Quantity)
	}
}

func TestUpdateCartItemIsAbsolute(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "orchids", "25.00")

	if _, err := AddToCart(db, 1, product.ID, 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// absolute set, not additive
	item, err := UpdateCartItem(db, 1, product.ID, 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if item.Quantity != 7 {
		t.Errorf("expected quantity 7 after absolute update, got %d", item.Quantity)
	}
}

func TestUpdateCartItemZeroDeletes(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "daisies", "5.00")

	if _, err := AddToCart(db, 1, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	item, err := UpdateCartItem(db, 1, product.ID, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil item after zero-quantity update, got %+v", item)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	if count != 0 {
		t.Errorf("expected row to be deleted, found %d rows", count)
	}
}

func TestUpdateCartItemNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateCartItem(db, 1, 42, 3)
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "sunflowers", "9.50")

	if _, err := AddToCart(db, 1, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := RemoveFromCart(db, 1, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := RemoveFromCart(db, 1, product.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected not-found on second remove, got %v", err)
	}
}

// Cart prices are live: a catalog price change shows up on the next read.
func TestGetCartReflectsCurrentPrice(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "peonies", "20.00")

	if _, err := AddToCart(db, 1, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	newPrice := decimal.NewFromFloat(30.00)
	if err := db.Model(product).Update("price", newPrice).Error; err != nil {
		t.Fatalf("price update failed: %v", err)
	}

	items, err := GetCart(db, 1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one cart item, got %d", len(items))
	}
	if !items[0].Product.Price.Equal(newPrice) {
		t.Errorf("expected live price %s, got %s", newPrice, items[0].Product.Price)
	}
}

func TestGetCartScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "carnations", "6.00")

	if _, err := AddToCart(db, 1, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := GetCart(db, 2)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty cart for other user, got %d items", len(items))
	}
}
