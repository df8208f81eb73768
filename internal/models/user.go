package models

// User accounts carry externally assigned identifiers, so the primary key
// is the caller-provided user_id rather than a serial.
type User struct {
	UserID            string `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username          string `gorm:"column:user_name;not null" json:"username"`
	ClubOrAssociation string `gorm:"column:club_or_association;not null" json:"club_or_association"`
	Password          string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string { return "user_account" }
