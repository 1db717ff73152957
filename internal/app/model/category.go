package model

// Category groups menu products (breakfast, grills, drinks and so on).
type Category struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`

	// Deleting a category removes its products with it.
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
