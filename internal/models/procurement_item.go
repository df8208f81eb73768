package models

// ItemCount is only ever mutated by grant creation, which decrements it
// atomically. The check constraint is the database-side backstop for the
// never-negative invariant.
type ProcurementItem struct {
	ItemID       uint   `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	ItemName     string `gorm:"column:item_name;not null" json:"item_name"`
	ItemCount    int    `gorm:"column:item_count;not null;check:item_count >= 0" json:"item_count"`
	ItemCategory string `gorm:"column:item_category;not null" json:"item_category"`
}

func (ProcurementItem) TableName() string { return "procurement_item" }
