package cartControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/apperrors"
	"github.com/luandz123/basket-fl-shop/middleware"
	"github.com/luandz123/basket-fl-shop/models"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// AddToCart merges quantity into the user's cart row for the product,
// creating the row on first add. The increment is a single UPDATE with
// quantity = quantity + ?, so two simultaneous adds cannot lose a write.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Validation("quantity must be at least 1")
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("product does not exist")
		}
		return nil, apperrors.Internal("failed to validate product", err)
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Internal("failed to fetch cart item", err)
		}
		item = models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, apperrors.Internal("failed to add item to cart", err)
		}
		item.Product = product
		return &item, nil
	}

	if err := db.Model(&item).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
		return nil, apperrors.Internal("failed to update cart item", err)
	}
	if err := db.Preload("Product").First(&item, item.ID).Error; err != nil {
		return nil, apperrors.Internal("failed to reload cart item", err)
	}
	return &item, nil
}

// GetCart returns the user's cart rows with live product data; cart prices
// are never frozen, only order items are.
func GetCart(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, apperrors.Internal("failed to fetch cart", err)
	}
	return items, nil
}

// UpdateCartItem overwrites the quantity (absolute set, unlike AddToCart
// which is additive). A quantity of zero or less removes the row.
func UpdateCartItem(db *gorm.DB, userID, productID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("cart item for product %d not found", productID))
		}
		return nil, apperrors.Internal("failed to fetch cart item", err)
	}

	if quantity <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return nil, apperrors.Internal("failed to remove cart item", err)
		}
		return nil, nil
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, apperrors.Internal("failed to update cart item", err)
	}
	if err := db.Preload("Product").First(&item, item.ID).Error; err != nil {
		return nil, apperrors.Internal("failed to reload cart item", err)
	}
	return &item, nil
}

// RemoveFromCart deletes the row for (user, product).
func RemoveFromCart(db *gorm.DB, userID, productID uint) error {
	result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if result.Error != nil {
		return apperrors.Internal("failed to delete cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("cart item for product %d not found", productID))
	}
	return nil
}

// ClearCart removes every row for the user. Used after checkout.
func ClearCart(db *gorm.DB, userID uint) error {
	if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return apperrors.Internal("failed to clear cart", err)
	}
	return nil
}

// POST /cart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddToCart(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			log.Printf("❌ add to cart failed (user=%d product=%d): %v", userID, input.ProductID, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := GetCart(db, userID)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// PUT /cart/:productId
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := UpdateCartItem(db, userID, uint(productID), input.Quantity)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}
		// item is nil when the quantity dropped to zero and the row was removed
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/:productId
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		if err := RemoveFromCart(db, userID, uint(productID)); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}
