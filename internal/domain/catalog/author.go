package catalog

import (
	"time"

	"library-app/internal/domain/model"
)

type Author struct {
	model.Base
	model.Picture
	model.Timestamps

	Firstname string     `gorm:"size:64;not null" json:"firstname" binding:"required"`
	Lastname  string     `gorm:"size:64;not null" json:"lastname" binding:"required"`
	Country   string     `json:"country"`
	City      string     `json:"city"`
	Biography string     `gorm:"not null" json:"biography" binding:"required"`
	Rating    Rating     `gorm:"default:0" json:"rating" binding:"gte=0,lte=5"`
	Birthday  *time.Time `json:"birthday"`

	Books []Book `gorm:"many2many:author_book;constraint:OnDelete:CASCADE" json:"books,omitempty"`
}
