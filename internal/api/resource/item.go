package resource

import (
	"fmt"
	"net/http"
	"strings"

	"library-app/internal/storage/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Item serves get, update and delete for one row by id. Kinds with a single
// picture attachment also carry their upload store and subdirectory so
// delete can clear the files before the row goes.
type Item[T any, P Ptr[T]] struct {
	db       *gorm.DB
	name     string // capitalized, e.g. "Order Item"
	path     string
	store    *uploads.Store // nil when the kind has no picture
	subdir   string
	preloads []string
}

func NewItem[T any, P Ptr[T]](db *gorm.DB, name, path string, store *uploads.Store, subdir string, preloads ...string) *Item[T, P] {
	return &Item[T, P]{db: db, name: name, path: path, store: store, subdir: subdir, preloads: preloads}
}

func (h *Item[T, P]) Get(c *gin.Context) {
	p, ok := firstByID[T, P](c, h.db, h.name, h.preloads)
	if !ok {
		return
	}
	p.SetLinks(itemPath(h.path, p.EntityID()), h.path)
	c.JSON(http.StatusOK, p)
}

// Update re-validates the body over the fetched row and saves the full row.
// The path id wins over any id carried in the body. Responds 201, not 200,
// matching the established contract.
func (h *Item[T, P]) Update(c *gin.Context) {
	p, ok := firstByID[T, P](c, h.db, h.name, nil)
	if !ok {
		return
	}

	id := p.EntityID()
	if err := c.ShouldBindJSON(p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": BindingErrors(err)})
		return
	}
	p.SetEntityID(id)

	if err := h.db.Omit(clause.Associations).Save(p).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": fmt.Sprintf("An exception occured while updating the %s", strings.ToLower(h.name))})
		return
	}

	p.SetLinks(itemPath(h.path, id), h.path)
	c.JSON(http.StatusCreated, p)
}

// Delete removes the row, clearing the entity's upload directory first when
// it has a picture set. Cascades to owned rows happen at the storage layer.
func (h *Item[T, P]) Delete(c *gin.Context) {
	p, ok := firstByID[T, P](c, h.db, h.name, nil)
	if !ok {
		return
	}

	if h.store != nil && h.subdir != "" {
		if pic, hasPic := any(p).(interface{ PicturePath() string }); hasPic && pic.PicturePath() != "" {
			h.store.RemoveDir(uploads.Dir(h.subdir, p.EntityID()))
		}
	}

	if err := h.db.Delete(p).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": fmt.Sprintf("An exception throwed while deleting the %s!", strings.ToLower(h.name))})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": fmt.Sprintf("You successfully deleted the %s!", strings.ToLower(h.name))})
}
