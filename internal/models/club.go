package models

type Club struct {
	ClubID   uint   `gorm:"column:club_id;primaryKey;autoIncrement" json:"club_id"`
	ClubName string `gorm:"column:club_name;not null" json:"club_name"`
}

func (Club) TableName() string { return "clubs" }
