package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
	}
}
