package models

// CartItem holds one (user, product) line of a pre-checkout cart.
// At most one row exists per pair; AddToCart merges quantities instead
// of inserting duplicates, so no unique constraint is stored.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"index:idx_cart_user_product" json:"userId"`
	ProductID uint    `gorm:"index:idx_cart_user_product" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
