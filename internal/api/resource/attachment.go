package resource

import (
	"net/http"
	"path"
	"path/filepath"

	"library-app/internal/storage/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Attachment serves the picture upload endpoint for entity kinds with
// exactly one image. Files live at {upload_root}/{subdir}/{id}/{filename}.
type Attachment[T any, P PicturePtr[T]] struct {
	db     *gorm.DB
	name   string
	path   string
	subdir string
	store  *uploads.Store
}

func NewAttachment[T any, P PicturePtr[T]](db *gorm.DB, name, path, subdir string, store *uploads.Store) *Attachment[T, P] {
	return &Attachment[T, P]{db: db, name: name, path: path, subdir: subdir, store: store}
}

// Put uploads or replaces the entity's picture. The new file is written
// before the previous one is removed, so a failed save leaves the old
// picture in place; there is no atomic guarantee across the two steps.
func (h *Attachment[T, P]) Put(c *gin.Context) {
	p, ok := firstByID[T, P](c, h.db, h.name, nil)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File didn`t found."})
		return
	}

	if !uploads.AllowedFile(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File type not allowed, upload png, jpeg, svg files"})
		return
	}
	if mt := file.Header.Get("Content-Type"); mt != "" && !uploads.AllowedMimetype(mt) {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File type not allowed, upload png, jpeg, svg files"})
		return
	}

	filename := uploads.SecureFilename(file.Filename)
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File type not allowed, upload png, jpeg, svg files"})
		return
	}

	dir := uploads.Dir(h.subdir, p.EntityID())
	abs, err := h.store.EnsureDir(dir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(abs, filename)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return
	}

	rel := path.Join(dir, filename)
	if old := p.PicturePath(); old != "" && old != rel {
		h.store.RemoveFile(old)
	}
	p.SetPicturePath(rel)

	if err := h.db.Omit(clause.Associations).Save(p).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return
	}

	p.SetLinks(itemPath(h.path, p.EntityID()), h.path)
	c.JSON(http.StatusOK, p)
}
