package domain

// WishlistItem Model, stored in the wishList table
type WishlistItem struct {
	ID     uint   `gorm:"primaryKey"`                   // Surrogate key, identical inserts stay distinct rows
	Name   string `gorm:"column:name;not null"`         // Product name
	Link   string `gorm:"column:link"`                  // Product link
	UserID uint   `gorm:"column:userId;not null;index"` // Owning user
	GameID uint   `gorm:"column:gameId;not null;index"` // Game the wish is attached to
}

// TableName keeps the table name used by the existing schema
func (WishlistItem) TableName() string {
	return "wishList"
}

// Wish is a gift suggestion as submitted by a user
type Wish struct {
	ProductName string `json:"productName"` // Product name
	ProductLink string `json:"productLink"` // Product link
}

// WishlistEntry is one row of a user's wishlist read. A user without any
// items still produces a single entry with both fields nil.
type WishlistEntry struct {
	WishName *string `gorm:"column:wishName" json:"wishName"` // Product name, nil on the empty row
	Link     *string `gorm:"column:link" json:"link"`         // Product link, nil on the empty row
}

// IsEmpty reports whether the entry is the placeholder row of an empty wishlist
func (e WishlistEntry) IsEmpty() bool {
	return e.WishName == nil && e.Link == nil
}
