// Package app builds the HTTP engine once per process. Serverless hosts
// keep the process warm between invocations, so the engine (and its DB
// pool) is cached across them; nothing is shared between processes and
// teardown happens implicitly at process exit.
package app

import (
	"os"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/routes"
	"gorm.io/gorm"
)

var (
	once     sync.Once
	instance *gin.Engine
)

// Build returns the process-wide engine, constructing it on first use.
func Build(db *gorm.DB) *gin.Engine {
	once.Do(func() {
		instance = newEngine(db)
	})
	return instance
}

func newEngine(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uploadsDir := os.Getenv("UPLOAD_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	routes.SetupRoutes(r, db)
	return r
}
