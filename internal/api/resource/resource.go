// Package resource implements the three generic handler shapes every entity
// kind is served by: Collection (list/create), Item (get/update/delete) and
// Attachment (picture upload). One instance of each is bound per entity kind
// at route registration; entity-specific handlers live in their own packages.
package resource

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Entity is what the generic handlers need from every domain row.
type Entity interface {
	EntityID() uint
	SetEntityID(uint)
	SetLinks(self, collection string)
}

// Ptr constrains the handler's pointer parameter to the row type.
type Ptr[T any] interface {
	*T
	Entity
}

// PicturePtr additionally exposes the single-image attachment fields.
type PicturePtr[T any] interface {
	Ptr[T]
	PicturePath() string
	SetPicturePath(string)
}

func itemPath(collection string, id uint) string {
	return fmt.Sprintf("%s/%d", collection, id)
}

// firstByID fetches one row by the :id path parameter, answering 404 with
// the entity kind's named message when it is absent.
func firstByID[T any, P Ptr[T]](c *gin.Context, db *gorm.DB, name string, preloads []string) (P, bool) {
	var zero P

	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s %s doesn`t exist.", name, raw)})
		return zero, false
	}

	q := db
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var row T
	p := P(&row)
	if err := q.First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s %d doesn`t exist.", name, id)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to load %s", strings.ToLower(name))})
		}
		return zero, false
	}
	return p, true
}
