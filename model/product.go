package model

import "github.com/shopspring/decimal"

// ProductType is the catalog category. Unknown values are rejected at the
// edge; an omitted type falls back to TypeOthers.
type ProductType string

const (
	TypeElectronics ProductType = "Electronics"
	TypeClothing    ProductType = "Clothing"
	TypeFood        ProductType = "Food"
	TypeBooks       ProductType = "Books"
	TypeOthers      ProductType = "Others"
)

func (t ProductType) Valid() bool {
	switch t {
	case TypeElectronics, TypeClothing, TypeFood, TypeBooks, TypeOthers:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Type        ProductType     `gorm:"size:20;not null;default:Others" json:"type"`
	Item        string          `gorm:"size:100;not null" json:"item"`
	Description string          `gorm:"size:1000;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (Product) TableName() string {
	return "products"
}
