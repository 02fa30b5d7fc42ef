package orders

import (
	"time"

	"library-app/internal/domain/catalog"
	"library-app/internal/domain/model"

	"gorm.io/gorm"
)

type ItemStatus string

const (
	StatusInProgress ItemStatus = "in progress"
	StatusReturned   ItemStatus = "returned"
)

// loanPeriod is how long a borrowed book may be kept.
const loanPeriod = 10 * 24 * time.Hour

type Order struct {
	model.Base
	model.Timestamps

	UserID uint `gorm:"not null" json:"user_id" binding:"required"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	model.Base
	model.Timestamps

	OrderID     uint          `gorm:"not null" json:"order_id" binding:"required"`
	BookID      uint          `gorm:"not null" json:"book_id" binding:"required"`
	Book        *catalog.Book `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BooksAmount int           `gorm:"default:1" json:"books_amount" binding:"omitempty,gte=1"`
	Status      ItemStatus    `gorm:"type:varchar(20);default:'in progress'" json:"status" binding:"omitempty,oneof='in progress' returned"`
	EndAt       time.Time     `json:"end_at"`
}

func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	if i.BooksAmount == 0 {
		i.BooksAmount = 1
	}
	if i.Status == "" {
		i.Status = StatusInProgress
	}
	if i.EndAt.IsZero() {
		i.EndAt = time.Now().Add(loanPeriod)
	}
	return nil
}
