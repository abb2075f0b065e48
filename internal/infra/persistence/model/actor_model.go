package model

import "time"

// ActorModel mirrors the 'actors' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ActorModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(100);unique;not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(32);not null;index"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActorModel) TableName() string {
	return "actors"
}
