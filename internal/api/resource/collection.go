package resource

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Collection serves list and create for one entity kind.
type Collection[T any, P Ptr[T]] struct {
	db       *gorm.DB
	name     string // lower case, used in error messages
	path     string // collection URL, e.g. "/genres"
	preloads []string
}

func NewCollection[T any, P Ptr[T]](db *gorm.DB, name, path string, preloads ...string) *Collection[T, P] {
	return &Collection[T, P]{db: db, name: name, path: path, preloads: preloads}
}

// List returns every row in storage order.
func (h *Collection[T, P]) List(c *gin.Context) {
	q := h.db
	for _, p := range h.preloads {
		q = q.Preload(p)
	}

	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to load %ss", h.name)})
		return
	}

	for i := range rows {
		p := P(&rows[i])
		p.SetLinks(itemPath(h.path, p.EntityID()), h.path)
	}
	c.JSON(http.StatusOK, rows)
}

// Create validates the body against the entity's binding rules and persists
// it. Storage-level uniqueness and foreign-key violations surface as a
// generic 400 so no database detail leaks to the client.
func (h *Collection[T, P]) Create(c *gin.Context) {
	var row T
	p := P(&row)
	if err := c.ShouldBindJSON(p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": BindingErrors(err)})
		return
	}

	if err := h.db.Create(p).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": fmt.Sprintf("An exception occured while creating the %s!", h.name)})
		return
	}

	p.SetLinks(itemPath(h.path, p.EntityID()), h.path)
	c.JSON(http.StatusCreated, p)
}
