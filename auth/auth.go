package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/apperrors"
	"github.com/luandz123/basket-fl-shop/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new active user with the "user" role.
func Register(db *gorm.DB, email, password, name string) (*models.User, error) {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("user with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("failed to check existing user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, apperrors.Internal("failed to create user", err)
	}
	return &user, nil
}

// Login verifies the credentials and returns a signed token plus the user.
func Login(db *gorm.DB, email, password string) (string, *models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Unauthorized("invalid email or password")
		}
		return "", nil, apperrors.Internal("failed to look up user", err)
	}

	if !user.IsActive {
		return "", nil, apperrors.Unauthorized("your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.Unauthorized("invalid email or password")
	}

	token, err := IssueToken(&user)
	if err != nil {
		return "", nil, apperrors.Internal("failed to sign token", err)
	}
	return token, &user, nil
}

// POST /auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := Register(db, strings.ToLower(strings.TrimSpace(input.Email)), input.Password, input.Name)
		if err != nil {
			log.Printf("❌ register failed for %s: %v", input.Email, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}

		log.Printf("✅ registered user %s", user.Email)
		c.JSON(http.StatusCreated, user)
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, user, err := Login(db, strings.ToLower(strings.TrimSpace(input.Email)), input.Password)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}

		log.Printf("✅ login successful: %s (%s)", user.Email, user.Role)
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}
