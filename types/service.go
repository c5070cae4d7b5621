package types

type ServiceRequestCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	DeviceType  string `json:"device_type" binding:"required"`
	Description string `json:"description"`
}

type ServiceMessageReq struct {
	ID      int64  `json:"id" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type ServiceStatusUpdateReq struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=Pending 'In Progress' Completed"`
}
