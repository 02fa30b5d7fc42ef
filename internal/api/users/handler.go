package users

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"library-app/internal/api/resource"
	"library-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler covers the two places users deviate from the generic resource
// shapes: creation takes a plaintext password to hash, and password changes
// have their own endpoint.
type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// createRequest is the only request shape in the API that carries a
// plaintext password; it exists so the User model itself never binds one.
type createRequest struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username" binding:"required"`
	Firstname string     `json:"firstname" binding:"required"`
	Lastname  string     `json:"lastname" binding:"required"`
	Password  string     `json:"password" binding:"required"`
	Email     string     `json:"email" binding:"omitempty,email_basic"`
	Country   string     `json:"country"`
	City      string     `json:"city"`
	Birthday  *time.Time `json:"birthday"`
	Role      users.Role `json:"role" binding:"gte=0,lte=1"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": resource.BindingErrors(err)})
		return
	}

	user := users.User{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Country:   req.Country,
		City:      req.City,
		Birthday:  req.Birthday,
		Role:      req.Role,
	}
	user.ID = req.ID
	if err := user.Password.Set(req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception occured while creating the user!"})
		return
	}

	user.SetLinks(fmt.Sprintf("/users/%d", user.ID), "/users")
	c.JSON(http.StatusCreated, user)
}

// ChangePassword re-hashes and stores a new password for the target user.
// Unknown ids answer 404 instead of surfacing a storage fault.
func (h *Handler) ChangePassword(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("User %s doesn`t exist.", raw)})
		return
	}

	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": resource.BindingErrors(err)})
		return
	}

	var user users.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("User %d doesn`t exist.", id)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		}
		return
	}

	if err := user.Password.Set(body.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := h.db.Model(&user).Update("password", user.Password).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception occured while updating password of the user!"})
		return
	}

	user.SetLinks(fmt.Sprintf("/users/%d", user.ID), "/users")
	c.JSON(http.StatusCreated, user)
}
