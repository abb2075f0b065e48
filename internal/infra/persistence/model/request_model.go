package model

import "time"

// RequestModel mirrors the 'requests' table.
type RequestModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	TrackingNumber string  `gorm:"type:varchar(16);unique;not null"`
	RequesterID    int64   `gorm:"not null;index"`
	Location       string  `gorm:"type:varchar(255)"`
	District       string  `gorm:"type:varchar(100);not null;index"`
	Latitude       float64 `gorm:"type:double precision"`
	Longitude      float64 `gorm:"type:double precision"`
	Status         string  `gorm:"type:varchar(16);not null;index"`
	AssignedToID   *int64  `gorm:"index"`
	CreatedAt      time.Time
	FulfilledAt    *time.Time

	Items []RequestItemModel `gorm:"foreignKey:RequestID"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

// RequestItemModel mirrors the 'request_items' table. RequestID references requests.id.
type RequestItemModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	RequestID  int64 `gorm:"not null;index"`
	FoodItemID int64 `gorm:"not null"`
	Quantity   int   `gorm:"not null;check:quantity >= 1"`
}

// TableName explicitly sets the table name for GORM.
func (RequestItemModel) TableName() string {
	return "request_items"
}
