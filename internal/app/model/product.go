package model

// Product is a single menu item. CategoryID must reference an existing
// category; the service layer checks this on create and update.
type Product struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Name         string  `gorm:"type:varchar(200);not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	Price        float64 `gorm:"not null" json:"price"`
	ImageURL     string  `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CategoryID   uint    `gorm:"not null;index" json:"category_id"`
	DisplayOrder int     `gorm:"default:0" json:"display_order"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
