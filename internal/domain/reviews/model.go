package reviews

import (
	"library-app/internal/domain/catalog"
	"library-app/internal/domain/model"
)

type Review struct {
	model.Base
	model.Timestamps

	UserID  uint          `gorm:"not null" json:"user_id" binding:"required"`
	BookID  uint          `gorm:"not null" json:"book_id" binding:"required"`
	Book    *catalog.Book `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message string        `gorm:"not null" json:"message" binding:"required"`

	Images []ReviewImage `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// ReviewImage rows are created empty first so the upload path can include
// their id; the image path is filled in once the file is on disk.
type ReviewImage struct {
	model.Base

	ReviewID uint   `gorm:"not null" json:"review_id"`
	Image    string `json:"image"`
}
