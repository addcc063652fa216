package model

// User owns zero or more baskets. Password holds a bcrypt hash, never the
// raw credential, and is excluded from every JSON representation.
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"size:50;not null" json:"name"`
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Baskets  []Basket `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "user"
}
