package models

// Customer 客户模型
// assigned_sales_agent 由服务端在创建时指定为当前用户，客户端不可写
type Customer struct {
	ID                   uint    `json:"id" gorm:"primaryKey"`
	Name                 string  `json:"name" gorm:"size:100;not null"`
	Email                string  `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNo              string  `json:"phone_no" gorm:"size:15"`
	Address              string  `json:"address" gorm:"type:text"`
	AssignedSalesAgentID *uint   `json:"assigned_sales_agent"`
	AssignedSalesAgent   *User   `json:"-" gorm:"foreignKey:AssignedSalesAgentID;constraint:OnDelete:SET NULL"`
}

// CustomerRequest 创建/更新客户请求
// 指针字段用于区分 PATCH 时"未提供"和"显式置空"
type CustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	PhoneNo *string `json:"phone_no"`
	Address *string `json:"address"`
}
