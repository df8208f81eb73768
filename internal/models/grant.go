package models

// Grants are append-only: there is no update or delete path.
type Grant struct {
	GrantID       uint   `gorm:"column:grant_id;primaryKey;autoIncrement" json:"grant_id"`
	UserID        string `gorm:"column:user_id;not null" json:"user_id"`
	ProcurementID uint   `gorm:"column:procurement_id;not null;index" json:"procurement_id"`
	Count         int    `gorm:"column:count;not null" json:"count"`
	ClubID        uint   `gorm:"column:club_id;not null" json:"club_id"`
}

func (Grant) TableName() string { return "grants" }
