package models

// InquiryStatus 咨询单状态枚举
type InquiryStatus string

const (
	InquiryStatusOPEN        InquiryStatus = "Open"
	InquiryStatusIN_PROGRESS InquiryStatus = "In Progress"
	InquiryStatusCLOSED      InquiryStatus = "Closed"
)

// ValidInquiryStatus 校验咨询单状态取值
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusOPEN, InquiryStatusIN_PROGRESS, InquiryStatusCLOSED:
		return true
	}
	return false
}

// Inquiry 服务咨询记录
type Inquiry struct {
	ID                   uint          `gorm:"primaryKey"`
	Details              string        `gorm:"type:text"`
	Status               InquiryStatus `gorm:"size:20;default:Open"`
	CustomerID           uint          `gorm:"not null"`
	Customer             Customer      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	AssignedSalesAgentID uint          `gorm:"not null"`
	AssignedSalesAgent   User          `gorm:"foreignKey:AssignedSalesAgentID;constraint:OnDelete:CASCADE"`
	Services             []Service     `gorm:"many2many:inquiry_services"`
}

// InquiryResponse 咨询单输出，关联字段展开为完整对象
type InquiryResponse struct {
	ID                 uint          `json:"id"`
	Details            string        `json:"details"`
	Status             InquiryStatus `json:"status"`
	Customer           Customer      `json:"customer"`
	AssignedSalesAgent *UserResponse `json:"assigned_sales_agent"`
	Services           []Service     `json:"services"`
}

// InquiryRequest 咨询单写入，关联字段使用主键
// assigned_sales_agent 创建时被忽略(取当前用户)，更新时可覆盖
type InquiryRequest struct {
	Details            *string        `json:"details"`
	Status             *InquiryStatus `json:"status"`
	Customer           *uint          `json:"customer"`
	AssignedSalesAgent *uint          `json:"assigned_sales_agent"`
	Services           *[]uint        `json:"services"`
}

// NewInquiryResponse 构造咨询单输出
func NewInquiryResponse(inq Inquiry) InquiryResponse {
	resp := InquiryResponse{
		ID:       inq.ID,
		Details:  inq.Details,
		Status:   inq.Status,
		Customer: inq.Customer,
		Services: inq.Services,
	}
	if resp.Services == nil {
		resp.Services = []Service{}
	}
	if inq.AssignedSalesAgentID != 0 {
		agent := NewUserResponse(inq.AssignedSalesAgent)
		resp.AssignedSalesAgent = &agent
	}
	return resp
}

// NewInquiryResponseList 构造咨询单列表输出
func NewInquiryResponseList(inqs []Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(inqs))
	for _, inq := range inqs {
		out = append(out, NewInquiryResponse(inq))
	}
	return out
}
