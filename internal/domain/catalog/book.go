package catalog

import (
	"library-app/internal/domain/model"

	"gorm.io/gorm"
)

type Book struct {
	model.Base
	model.Picture
	model.Timestamps

	Name        string     `gorm:"size:255;not null" json:"name" binding:"required"`
	Isbn        string     `gorm:"size:17;not null" json:"isbn" binding:"required"`
	Description string     `json:"description"`
	Cover       BookCover  `gorm:"type:varchar(20);default:'paperbook'" json:"cover" binding:"omitempty,oneof=paperbook hardcover"`
	Count       int        `gorm:"default:0" json:"count" binding:"gte=0"`
	Status      BookStatus `gorm:"type:varchar(20);default:'available'" json:"status" binding:"omitempty,oneof=available unavailable"`
	Publisher   string     `gorm:"not null" json:"publisher" binding:"required"`
	Rating      Rating     `gorm:"default:0" json:"rating" binding:"gte=0,lte=5"`
	Format      BookFormat `gorm:"type:varchar(20);default:'e-book'" json:"format" binding:"omitempty,oneof=e-book paper audio"`
	Pages       int        `gorm:"not null;default:1" json:"pages" binding:"omitempty,gte=1"`
	GenreID     uint       `gorm:"not null" json:"genre_id" binding:"required"`

	Authors []Author `gorm:"many2many:author_book;constraint:OnDelete:CASCADE" json:"authors,omitempty"`
}

// BeforeSave fills column defaults so a full-row save never writes empty
// enum values or a zero page count.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	if b.Cover == "" {
		b.Cover = CoverPaperbook
	}
	if b.Status == "" {
		b.Status = StatusAvailable
	}
	if b.Format == "" {
		b.Format = FormatEbook
	}
	if b.Pages == 0 {
		b.Pages = 1
	}
	return nil
}
