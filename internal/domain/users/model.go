package users

import (
	"time"

	"library-app/internal/domain/model"
	"library-app/internal/domain/orders"
	"library-app/internal/domain/reviews"
)

type Role int

const (
	RoleVisitor Role = 0
	RoleAdmin   Role = 1
)

type User struct {
	model.Base
	model.Picture
	model.Timestamps

	Username  string     `gorm:"size:64;not null;uniqueIndex" json:"username" binding:"required"`
	Firstname string     `gorm:"size:64;not null" json:"firstname" binding:"required"`
	Lastname  string     `gorm:"size:64;not null" json:"lastname" binding:"required"`
	Email     string     `gorm:"size:255" json:"email" binding:"omitempty,email_basic"`
	Password  Credential `gorm:"column:password;type:text;not null" json:"-"`
	Country   string     `json:"country"`
	City      string     `json:"city"`
	Birthday  *time.Time `json:"birthday"`
	Role      Role       `gorm:"default:0" json:"role" binding:"gte=0,lte=1"`

	Orders  []orders.Order   `gorm:"constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Reviews []reviews.Review `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
