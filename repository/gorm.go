package repository

import (
	"errors"

	"salescrm/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translateError 将gorm的未找到错误翻译为统一哨兵
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------- 用户 ----------

type gormUserRepository struct{}

func (r *gormUserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := DB.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *gormUserRepository) Create(user *models.User) error {
	return DB.Create(user).Error
}

// ---------- 客户 ----------

type gormCustomerRepository struct{}

func (r *gormCustomerRepository) ListByScope(user *models.AuthUser) ([]models.Customer, error) {
	customers := []models.Customer{}
	switch user.Role {
	case models.UserRoleADMIN:
		if err := DB.Order("id").Find(&customers).Error; err != nil {
			return nil, err
		}
	case models.UserRoleSALES_AGENT:
		if err := DB.Where("assigned_sales_agent_id = ?", user.ID).Order("id").Find(&customers).Error; err != nil {
			return nil, err
		}
	}
	// 其他角色返回空集而不是错误
	return customers, nil
}

func (r *gormCustomerRepository) FindByScope(user *models.AuthUser, id uint) (*models.Customer, error) {
	query := DB.Where("id = ?", id)
	switch user.Role {
	case models.UserRoleADMIN:
	case models.UserRoleSALES_AGENT:
		query = query.Where("assigned_sales_agent_id = ?", user.ID)
	default:
		return nil, ErrNotFound
	}

	var customer models.Customer
	if err := query.First(&customer).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (r *gormCustomerRepository) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := DB.First(&customer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (r *gormCustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := DB.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (r *gormCustomerRepository) Save(customer *models.Customer) error {
	return DB.Save(customer).Error
}

func (r *gormCustomerRepository) Delete(id uint) error {
	return DB.Delete(&models.Customer{}, id).Error
}

// ---------- 服务目录 ----------

type gormServiceRepository struct{}

func (r *gormServiceRepository) List() ([]models.Service, error) {
	services := []models.Service{}
	if err := DB.Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *gormServiceRepository) FindByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := DB.First(&service, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &service, nil
}

func (r *gormServiceRepository) FindByIDs(ids []uint) ([]models.Service, error) {
	services := []models.Service{}
	if len(ids) == 0 {
		return services, nil
	}
	if err := DB.Where("id IN ?", ids).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *gormServiceRepository) Save(service *models.Service) error {
	return DB.Save(service).Error
}

func (r *gormServiceRepository) Delete(id uint) error {
	return DB.Select(clause.Associations).Delete(&models.Service{ID: id}).Error
}

// ---------- 咨询单 ----------

type gormInquiryRepository struct{}

func inquiryPreload(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").Preload("AssignedSalesAgent").Preload("Services")
}

func (r *gormInquiryRepository) ListByScope(user *models.AuthUser) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	switch user.Role {
	case models.UserRoleADMIN:
		if err := inquiryPreload(DB).Order("id").Find(&inquiries).Error; err != nil {
			return nil, err
		}
	case models.UserRoleSALES_AGENT:
		if err := inquiryPreload(DB).Where("assigned_sales_agent_id = ?", user.ID).Order("id").Find(&inquiries).Error; err != nil {
			return nil, err
		}
	}
	return inquiries, nil
}

func (r *gormInquiryRepository) FindByScope(user *models.AuthUser, id uint) (*models.Inquiry, error) {
	query := inquiryPreload(DB).Where("id = ?", id)
	switch user.Role {
	case models.UserRoleADMIN:
	case models.UserRoleSALES_AGENT:
		query = query.Where("assigned_sales_agent_id = ?", user.ID)
	default:
		return nil, ErrNotFound
	}

	var inquiry models.Inquiry
	if err := query.First(&inquiry).Error; err != nil {
		return nil, translateError(err)
	}
	return &inquiry, nil
}

func (r *gormInquiryRepository) FindByID(id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := inquiryPreload(DB).First(&inquiry, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &inquiry, nil
}

func (r *gormInquiryRepository) Create(inquiry *models.Inquiry) error {
	// 主记录和服务关联必须一起落库
	return DB.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Customer", "AssignedSalesAgent").Create(inquiry).Error
	})
}

func (r *gormInquiryRepository) Update(inquiry *models.Inquiry, services *[]models.Service) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(inquiry).Error; err != nil {
			return err
		}
		if services != nil {
			if err := tx.Model(inquiry).Association("Services").Replace(*services); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormInquiryRepository) Delete(id uint) error {
	return DB.Select(clause.Associations).Delete(&models.Inquiry{ID: id}).Error
}

// ---------- 报价单 ----------

type gormProposalRepository struct{}

func proposalPreload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Inquiry.Customer").
		Preload("Inquiry.AssignedSalesAgent").
		Preload("Inquiry.Services").
		Preload("Services")
}

func (r *gormProposalRepository) ListByScope(user *models.AuthUser) ([]models.Proposal, error) {
	proposals := []models.Proposal{}
	switch user.Role {
	case models.UserRoleADMIN:
		if err := proposalPreload(DB).Order("proposals.id").Find(&proposals).Error; err != nil {
			return nil, err
		}
	case models.UserRoleSALES_AGENT:
		err := proposalPreload(DB).
			Joins("JOIN inquiries ON inquiries.id = proposals.inquiry_id").
			Where("inquiries.assigned_sales_agent_id = ?", user.ID).
			Order("proposals.id").
			Find(&proposals).Error
		if err != nil {
			return nil, err
		}
	}
	return proposals, nil
}

func (r *gormProposalRepository) FindByScope(user *models.AuthUser, id uint) (*models.Proposal, error) {
	query := proposalPreload(DB).Where("proposals.id = ?", id)
	switch user.Role {
	case models.UserRoleADMIN:
	case models.UserRoleSALES_AGENT:
		query = query.
			Joins("JOIN inquiries ON inquiries.id = proposals.inquiry_id").
			Where("inquiries.assigned_sales_agent_id = ?", user.ID)
	default:
		return nil, ErrNotFound
	}

	var proposal models.Proposal
	if err := query.First(&proposal).Error; err != nil {
		return nil, translateError(err)
	}
	return &proposal, nil
}

func (r *gormProposalRepository) FindByID(id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := proposalPreload(DB).First(&proposal, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &proposal, nil
}

func (r *gormProposalRepository) Create(proposal *models.Proposal) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Inquiry").Create(proposal).Error
	})
}

func (r *gormProposalRepository) Update(proposal *models.Proposal, services *[]models.Service) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(proposal).Error; err != nil {
			return err
		}
		if services != nil {
			if err := tx.Model(proposal).Association("Services").Replace(*services); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormProposalRepository) Delete(id uint) error {
	return DB.Select(clause.Associations).Delete(&models.Proposal{ID: id}).Error
}
