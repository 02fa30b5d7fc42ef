package model

import "time"

// Links is the hyperlink pair attached to every top-level resource
// representation. Nested representations leave it unset.
type Links struct {
	Self       string `json:"self"`
	Collection string `json:"collection"`
}

// Base carries the surrogate integer identity shared by all entity kinds.
type Base struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Links *Links `gorm:"-" json:"_links,omitempty"`
}

func (b *Base) EntityID() uint { return b.ID }

func (b *Base) SetEntityID(id uint) { b.ID = id }

func (b *Base) SetLinks(self, collection string) {
	b.Links = &Links{Self: self, Collection: collection}
}

// Timestamps is embedded by every entity kind except Genre and ReviewImage.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Picture is embedded by entity kinds that own a single image attachment.
// The stored value is a path relative to the upload root, never file content.
type Picture struct {
	Picture string `json:"picture"`
}

func (p *Picture) PicturePath() string { return p.Picture }

func (p *Picture) SetPicturePath(rel string) { p.Picture = rel }
