package catalog

import "library-app/internal/domain/model"

type Genre struct {
	model.Base
	Name string `gorm:"not null" json:"name" binding:"required"`

	Books []Book `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
