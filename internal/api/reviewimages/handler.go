// Package reviewimages serves the per-review image gallery. Unlike the
// single-attachment kinds, a review owns many images, each with its own row
// and its own directory: review_images/{review_id}/{image_id}/{filename}.
package reviewimages

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strconv"

	"library-app/internal/domain/reviews"
	"library-app/internal/storage/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dirName = "review_images"

type Handler struct {
	db    *gorm.DB
	store *uploads.Store
}

func NewHandler(db *gorm.DB, store *uploads.Store) *Handler {
	return &Handler{db: db, store: store}
}

func (h *Handler) reviewID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Review %s doesn`t exist.", raw)})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) mustReview(c *gin.Context) (uint, bool) {
	id, ok := h.reviewID(c)
	if !ok {
		return 0, false
	}
	var review reviews.Review
	if err := h.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Review %d doesn`t exist.", id)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		}
		return 0, false
	}
	return id, true
}

func (h *Handler) mustImage(c *gin.Context) (*reviews.ReviewImage, bool) {
	raw := c.Param("image_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Review Image %s doesn`t exist.", raw)})
		return nil, false
	}
	var img reviews.ReviewImage
	if err := h.db.First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Review Image %d doesn`t exist.", id)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review image"})
		}
		return nil, false
	}
	return &img, true
}

// List returns the review's images; an unknown review id simply yields an
// empty collection.
func (h *Handler) List(c *gin.Context) {
	id, ok := h.reviewID(c)
	if !ok {
		return
	}

	images := make([]reviews.ReviewImage, 0)
	if err := h.db.Where("review_id = ?", id).Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// Create adds a gallery image. The empty row is created first so its id can
// become part of the upload path, then the file is validated and written.
func (h *Handler) Create(c *gin.Context) {
	reviewID, ok := h.mustReview(c)
	if !ok {
		return
	}

	file, filename, ok := h.requireFile(c)
	if !ok {
		return
	}

	img := reviews.ReviewImage{ReviewID: reviewID}
	if err := h.db.Create(&img).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return
	}

	if !h.saveFile(c, &img, file, filename) {
		return
	}
	c.JSON(http.StatusOK, img)
}

// Update replaces an image's file, clearing whatever was stored for that
// image id first.
func (h *Handler) Update(c *gin.Context) {
	if _, ok := h.mustReview(c); !ok {
		return
	}
	img, ok := h.mustImage(c)
	if !ok {
		return
	}

	file, filename, ok := h.requireFile(c)
	if !ok {
		return
	}

	if !h.saveFile(c, img, file, filename) {
		return
	}
	c.JSON(http.StatusOK, img)
}

// Delete removes the image row. When files exist on disk the review's whole
// upload directory goes with it, not just this image's subdirectory — the
// established, if blunt, cleanup scope.
func (h *Handler) Delete(c *gin.Context) {
	reviewID, ok := h.mustReview(c)
	if !ok {
		return
	}
	img, ok := h.mustImage(c)
	if !ok {
		return
	}

	reviewDir := path.Join(dirName, strconv.FormatUint(uint64(reviewID), 10))
	if img.Image != "" && h.store.HasDir(path.Join(reviewDir, strconv.FormatUint(uint64(img.ID), 10))) {
		h.store.RemoveDir(reviewDir)
	}

	if err := h.db.Delete(img).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while deleting the review image!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "You successfully deleted the review image!"})
}

// requireFile pulls and validates the multipart "file" part.
func (h *Handler) requireFile(c *gin.Context) (*multipart.FileHeader, string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File didn`t found."})
		return nil, "", false
	}

	if !uploads.AllowedFile(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File type not allowed, upload png, jpeg, svg files"})
		return nil, "", false
	}
	if mt := file.Header.Get("Content-Type"); mt != "" && !uploads.AllowedMimetype(mt) {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File type not allowed, upload png, jpeg, svg files"})
		return nil, "", false
	}

	filename := uploads.SecureFilename(file.Filename)
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "File type not allowed, upload png, jpeg, svg files"})
		return nil, "", false
	}
	return file, filename, true
}

// saveFile clears the image's directory, writes the new file and persists
// the relative path on the row.
func (h *Handler) saveFile(c *gin.Context, img *reviews.ReviewImage, file *multipart.FileHeader, filename string) bool {
	dir := path.Join(dirName,
		strconv.FormatUint(uint64(img.ReviewID), 10),
		strconv.FormatUint(uint64(img.ID), 10))

	h.store.RemoveDir(dir)

	abs, err := h.store.EnsureDir(dir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return false
	}
	if err := c.SaveUploadedFile(file, filepath.Join(abs, filename)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return false
	}

	img.Image = path.Join(dir, filename)
	if err := h.db.Save(img).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"exception": "An exception throwed while adding picture!"})
		return false
	}
	return true
}
