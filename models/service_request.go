package models

import "time"

// 维修工单状态
const (
	ServiceStatusPending    = "Pending"
	ServiceStatusInProgress = "In Progress"
	ServiceStatusCompleted  = "Completed"
)

type ServiceRequest struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Email       string    `gorm:"column:email;type:varchar(128);index;not null" json:"email"`
	Phone       string    `gorm:"column:phone;type:varchar(32);not null" json:"phone"`
	DeviceType  string    `gorm:"column:device_type;type:varchar(64)" json:"device_type"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Status      string    `gorm:"column:status;type:varchar(16);not null;default:Pending" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
