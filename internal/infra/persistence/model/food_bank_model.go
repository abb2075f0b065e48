package model

import "time"

// FoodBankModel mirrors the 'food_banks' table. OperatorID references actors.id
// and is unique: an operator administers at most one food bank.
type FoodBankModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(200);not null"`
	Location    string  `gorm:"type:varchar(255);not null"`
	District    string  `gorm:"type:varchar(100);not null;index"`
	ContactInfo string  `gorm:"type:varchar(255)"`
	Latitude    float64 `gorm:"type:double precision"`
	Longitude   float64 `gorm:"type:double precision"`
	OperatorID  int64   `gorm:"not null;uniqueIndex"`
	CreatedAt   time.Time

	Operator *ActorModel `gorm:"foreignKey:OperatorID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodBankModel) TableName() string {
	return "food_banks"
}
