package models

import "github.com/shopspring/decimal"

// ProposalStatus 报价单状态枚举
type ProposalStatus string

const (
	ProposalStatusPENDING  ProposalStatus = "Pending"
	ProposalStatusACCEPTED ProposalStatus = "Accepted"
	ProposalStatusREJECTED ProposalStatus = "Rejected"
)

// ValidProposalStatus 校验报价单状态取值
func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalStatusPENDING, ProposalStatusACCEPTED, ProposalStatusREJECTED:
		return true
	}
	return false
}

// Proposal 针对某条咨询单的报价
type Proposal struct {
	ID        uint            `gorm:"primaryKey"`
	InquiryID uint            `gorm:"not null"`
	Inquiry   Inquiry         `gorm:"foreignKey:InquiryID;constraint:OnDelete:CASCADE"`
	Details   string          `gorm:"type:text"`
	Status    ProposalStatus  `gorm:"size:10"`
	Cost      decimal.Decimal `gorm:"type:numeric(10,2)"`
	Services  []Service       `gorm:"many2many:proposal_services"`
}

// ProposalResponse 报价单输出，inquiry 完整展开
type ProposalResponse struct {
	ID       uint            `json:"id"`
	Inquiry  InquiryResponse `json:"inquiry"`
	Details  string          `json:"details"`
	Services []Service       `json:"services"`
	Status   ProposalStatus  `json:"status"`
	Cost     decimal.Decimal `json:"cost"`
}

// ProposalRequest 报价单写入，关联字段使用主键
type ProposalRequest struct {
	Inquiry  *uint            `json:"inquiry"`
	Details  *string          `json:"details"`
	Services *[]uint          `json:"services"`
	Status   *ProposalStatus  `json:"status"`
	Cost     *decimal.Decimal `json:"cost"`
}

// NewProposalResponse 构造报价单输出
func NewProposalResponse(p Proposal) ProposalResponse {
	resp := ProposalResponse{
		ID:       p.ID,
		Inquiry:  NewInquiryResponse(p.Inquiry),
		Details:  p.Details,
		Services: p.Services,
		Status:   p.Status,
		Cost:     p.Cost,
	}
	if resp.Services == nil {
		resp.Services = []Service{}
	}
	return resp
}

// NewProposalResponseList 构造报价单列表输出
func NewProposalResponseList(ps []Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProposalResponse(p))
	}
	return out
}
