package repository

import (
	"errors"

	"salescrm/models"
)

// ErrNotFound 记录不存在
// 查找类方法统一返回该哨兵错误，控制器据此翻译为404，而不是靠异常控制流
var ErrNotFound = errors.New("record not found")

// UserRepository 用户数据访问
type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	CountByRole(role models.UserRole) (int64, error)
	Create(user *models.User) error
}

// CustomerRepository 客户数据访问
// ListByScope/FindByScope 按调用者角色做行级过滤:
// 管理员看全部，销售代表只看 assigned_sales_agent 是自己的行，其他角色为空集
type CustomerRepository interface {
	ListByScope(user *models.AuthUser) ([]models.Customer, error)
	FindByScope(user *models.AuthUser, id uint) (*models.Customer, error)
	FindByID(id uint) (*models.Customer, error)
	FindByEmail(email string) (*models.Customer, error)
	Save(customer *models.Customer) error
	Delete(id uint) error
}

// ServiceRepository 服务目录数据访问，无归属维度
type ServiceRepository interface {
	List() ([]models.Service, error)
	FindByID(id uint) (*models.Service, error)
	FindByIDs(ids []uint) ([]models.Service, error)
	Save(service *models.Service) error
	Delete(id uint) error
}

// InquiryRepository 咨询单数据访问
// Create/Update 在一个事务内完成主记录与服务关联的写入
type InquiryRepository interface {
	ListByScope(user *models.AuthUser) ([]models.Inquiry, error)
	FindByScope(user *models.AuthUser, id uint) (*models.Inquiry, error)
	FindByID(id uint) (*models.Inquiry, error)
	Create(inquiry *models.Inquiry) error
	Update(inquiry *models.Inquiry, services *[]models.Service) error
	Delete(id uint) error
}

// ProposalRepository 报价单数据访问
// 销售代表的可见范围经由所属咨询单的 assigned_sales_agent 推导
type ProposalRepository interface {
	ListByScope(user *models.AuthUser) ([]models.Proposal, error)
	FindByScope(user *models.AuthUser, id uint) (*models.Proposal, error)
	FindByID(id uint) (*models.Proposal, error)
	Create(proposal *models.Proposal) error
	Update(proposal *models.Proposal, services *[]models.Service) error
	Delete(id uint) error
}

// 全局仓储实例，main 里装配gorm实现，测试里换成内存实现
var (
	Users     UserRepository
	Customers CustomerRepository
	Services  ServiceRepository
	Inquiries InquiryRepository
	Proposals ProposalRepository
)

// UseGorm 装配基于gorm的仓储实现
func UseGorm() {
	Users = &gormUserRepository{}
	Customers = &gormCustomerRepository{}
	Services = &gormServiceRepository{}
	Inquiries = &gormInquiryRepository{}
	Proposals = &gormProposalRepository{}
}

// UseMemory 装配内存仓储实现(测试用)，返回底层存储便于直接预置数据
func UseMemory() *MemoryStore {
	store := NewMemoryStore()
	Users = &memoryUserRepository{store}
	Customers = &memoryCustomerRepository{store}
	Services = &memoryServiceRepository{store}
	Inquiries = &memoryInquiryRepository{store}
	Proposals = &memoryProposalRepository{store}
	return store
}
