package model

import "time"

// Basket is immutable once created: there is no update or delete endpoint,
// only creation with a set of products and per-owner listing.
type Basket struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null" json:"user_id"`
	Date     time.Time `gorm:"autoCreateTime" json:"date"`
	Products []Product `gorm:"many2many:products_basket" json:"products"`
}

func (Basket) TableName() string {
	return "basket"
}
