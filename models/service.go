package models

// Service 服务目录条目，无归属维度，全局可见
type Service struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       *string `json:"price" gorm:"size:15"` // 文本价格，不做数值校验
}

// ServiceRequest 创建/更新服务请求
type ServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
}
