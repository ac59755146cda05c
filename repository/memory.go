package repository

import (
	"sort"
	"sync"

	"salescrm/models"
)

// MemoryStore 内存存储，实现与gorm版相同的仓储语义
// 用于在没有真实数据库的情况下测试策略与控制器逻辑
type MemoryStore struct {
	mu sync.Mutex

	users     map[uint]models.User
	customers map[uint]models.Customer
	services  map[uint]models.Service
	inquiries map[uint]models.Inquiry
	proposals map[uint]models.Proposal

	// 多对多关联，键为主记录ID
	inquiryServices  map[uint][]uint
	proposalServices map[uint][]uint

	nextID uint
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:            map[uint]models.User{},
		customers:        map[uint]models.Customer{},
		services:         map[uint]models.Service{},
		inquiries:        map[uint]models.Inquiry{},
		proposals:        map[uint]models.Proposal{},
		inquiryServices:  map[uint][]uint{},
		proposalServices: map[uint][]uint{},
	}
}

func (s *MemoryStore) allocID() uint {
	s.nextID++
	return s.nextID
}

// AddUser 预置用户(测试辅助)
func (s *MemoryStore) AddUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.allocID()
	}
	s.users[user.ID] = user
	return user
}

// AddCustomer 预置客户(测试辅助)
func (s *MemoryStore) AddCustomer(customer models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if customer.ID == 0 {
		customer.ID = s.allocID()
	}
	s.customers[customer.ID] = customer
	return customer
}

// AddService 预置服务(测试辅助)
func (s *MemoryStore) AddService(service models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	if service.ID == 0 {
		service.ID = s.allocID()
	}
	s.services[service.ID] = service
	return service
}

// AddInquiry 预置咨询单(测试辅助)，关联服务取 Services 的ID
func (s *MemoryStore) AddInquiry(inquiry models.Inquiry) models.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inquiry.ID == 0 {
		inquiry.ID = s.allocID()
	}
	s.inquiryServices[inquiry.ID] = serviceIDs(inquiry.Services)
	inquiry.Customer = models.Customer{}
	inquiry.AssignedSalesAgent = models.User{}
	inquiry.Services = nil
	s.inquiries[inquiry.ID] = inquiry
	return inquiry
}

// AddProposal 预置报价单(测试辅助)
func (s *MemoryStore) AddProposal(proposal models.Proposal) models.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if proposal.ID == 0 {
		proposal.ID = s.allocID()
	}
	s.proposalServices[proposal.ID] = serviceIDs(proposal.Services)
	proposal.Inquiry = models.Inquiry{}
	proposal.Services = nil
	s.proposals[proposal.ID] = proposal
	return proposal
}

func serviceIDs(services []models.Service) []uint {
	ids := make([]uint, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}
	return ids
}

// hydrateInquiry 填充咨询单的关联对象，对应gorm实现的Preload
func (s *MemoryStore) hydrateInquiry(inquiry models.Inquiry) models.Inquiry {
	inquiry.Customer = s.customers[inquiry.CustomerID]
	inquiry.AssignedSalesAgent = s.users[inquiry.AssignedSalesAgentID]
	inquiry.Services = []models.Service{}
	for _, id := range s.inquiryServices[inquiry.ID] {
		if svc, ok := s.services[id]; ok {
			inquiry.Services = append(inquiry.Services, svc)
		}
	}
	return inquiry
}

func (s *MemoryStore) hydrateProposal(proposal models.Proposal) models.Proposal {
	if inq, ok := s.inquiries[proposal.InquiryID]; ok {
		proposal.Inquiry = s.hydrateInquiry(inq)
	}
	proposal.Services = []models.Service{}
	for _, id := range s.proposalServices[proposal.ID] {
		if svc, ok := s.services[id]; ok {
			proposal.Services = append(proposal.Services, svc)
		}
	}
	return proposal
}

// ---------- 用户 ----------

type memoryUserRepository struct{ store *MemoryStore }

func (r *memoryUserRepository) FindByID(id uint) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		return &user, nil
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) FindByUsername(username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) CountByRole(role models.UserRole) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, user := range r.store.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *memoryUserRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.store.allocID()
	}
	r.store.users[user.ID] = *user
	return nil
}

// ---------- 客户 ----------

type memoryCustomerRepository struct{ store *MemoryStore }

func (r *memoryCustomerRepository) ListByScope(user *models.AuthUser) ([]models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	customers := []models.Customer{}
	for _, customer := range r.store.customers {
		if customerVisible(customer, user) {
			customers = append(customers, customer)
		}
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func customerVisible(customer models.Customer, user *models.AuthUser) bool {
	switch user.Role {
	case models.UserRoleADMIN:
		return true
	case models.UserRoleSALES_AGENT:
		return customer.AssignedSalesAgentID != nil && *customer.AssignedSalesAgentID == user.ID
	}
	return false
}

func (r *memoryCustomerRepository) FindByScope(user *models.AuthUser, id uint) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	customer, ok := r.store.customers[id]
	if !ok || !customerVisible(customer, user) {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (r *memoryCustomerRepository) FindByID(id uint) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if customer, ok := r.store.customers[id]; ok {
		return &customer, nil
	}
	return nil, ErrNotFound
}

func (r *memoryCustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, customer := range r.store.customers {
		if customer.Email == email {
			c := customer
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCustomerRepository) Save(customer *models.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if customer.ID == 0 {
		customer.ID = r.store.allocID()
	}
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *memoryCustomerRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.customers, id)
	// 级联删除引用该客户的咨询单及其报价单
	for inqID, inquiry := range r.store.inquiries {
		if inquiry.CustomerID == id {
			r.store.deleteInquiryLocked(inqID)
		}
	}
	return nil
}

// ---------- 服务目录 ----------

type memoryServiceRepository struct{ store *MemoryStore }

func (r *memoryServiceRepository) List() ([]models.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	services := []models.Service{}
	for _, service := range r.store.services {
		services = append(services, service)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (r *memoryServiceRepository) FindByID(id uint) (*models.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if service, ok := r.store.services[id]; ok {
		return &service, nil
	}
	return nil, ErrNotFound
}

func (r *memoryServiceRepository) FindByIDs(ids []uint) ([]models.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	services := []models.Service{}
	for _, id := range ids {
		if service, ok := r.store.services[id]; ok {
			services = append(services, service)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (r *memoryServiceRepository) Save(service *models.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if service.ID == 0 {
		service.ID = r.store.allocID()
	}
	r.store.services[service.ID] = *service
	return nil
}

func (r *memoryServiceRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.services, id)
	for key, ids := range r.store.inquiryServices {
		r.store.inquiryServices[key] = removeID(ids, id)
	}
	for key, ids := range r.store.proposalServices {
		r.store.proposalServices[key] = removeID(ids, id)
	}
	return nil
}

func removeID(ids []uint, id uint) []uint {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ---------- 咨询单 ----------

type memoryInquiryRepository struct{ store *MemoryStore }

func inquiryVisible(inquiry models.Inquiry, user *models.AuthUser) bool {
	switch user.Role {
	case models.UserRoleADMIN:
		return true
	case models.UserRoleSALES_AGENT:
		return inquiry.AssignedSalesAgentID == user.ID
	}
	return false
}

func (r *memoryInquiryRepository) ListByScope(user *models.AuthUser) ([]models.Inquiry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inquiries := []models.Inquiry{}
	for _, inquiry := range r.store.inquiries {
		if inquiryVisible(inquiry, user) {
			inquiries = append(inquiries, r.store.hydrateInquiry(inquiry))
		}
	}
	sort.Slice(inquiries, func(i, j int) bool { return inquiries[i].ID < inquiries[j].ID })
	return inquiries, nil
}

func (r *memoryInquiryRepository) FindByScope(user *models.AuthUser, id uint) (*models.Inquiry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inquiry, ok := r.store.inquiries[id]
	if !ok || !inquiryVisible(inquiry, user) {
		return nil, ErrNotFound
	}
	hydrated := r.store.hydrateInquiry(inquiry)
	return &hydrated, nil
}

func (r *memoryInquiryRepository) FindByID(id uint) (*models.Inquiry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inquiry, ok := r.store.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	hydrated := r.store.hydrateInquiry(inquiry)
	return &hydrated, nil
}

func (r *memoryInquiryRepository) Create(inquiry *models.Inquiry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if inquiry.ID == 0 {
		inquiry.ID = r.store.allocID()
	}
	r.store.inquiryServices[inquiry.ID] = serviceIDs(inquiry.Services)
	stored := *inquiry
	stored.Customer = models.Customer{}
	stored.AssignedSalesAgent = models.User{}
	stored.Services = nil
	r.store.inquiries[inquiry.ID] = stored
	return nil
}

func (r *memoryInquiryRepository) Update(inquiry *models.Inquiry, services *[]models.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if services != nil {
		r.store.inquiryServices[inquiry.ID] = serviceIDs(*services)
	}
	stored := *inquiry
	stored.Customer = models.Customer{}
	stored.AssignedSalesAgent = models.User{}
	stored.Services = nil
	r.store.inquiries[inquiry.ID] = stored
	return nil
}

func (r *memoryInquiryRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.deleteInquiryLocked(id)
	return nil
}

// deleteInquiryLocked 删除咨询单及其级联的报价单，调用方须持锁
func (s *MemoryStore) deleteInquiryLocked(id uint) {
	delete(s.inquiries, id)
	delete(s.inquiryServices, id)
	for propID, proposal := range s.proposals {
		if proposal.InquiryID == id {
			delete(s.proposals, propID)
			delete(s.proposalServices, propID)
		}
	}
}

// ---------- 报价单 ----------

type memoryProposalRepository struct{ store *MemoryStore }

func (r *memoryProposalRepository) proposalVisibleLocked(proposal models.Proposal, user *models.AuthUser) bool {
	switch user.Role {
	case models.UserRoleADMIN:
		return true
	case models.UserRoleSALES_AGENT:
		inquiry, ok := r.store.inquiries[proposal.InquiryID]
		return ok && inquiry.AssignedSalesAgentID == user.ID
	}
	return false
}

func (r *memoryProposalRepository) ListByScope(user *models.AuthUser) ([]models.Proposal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	proposals := []models.Proposal{}
	for _, proposal := range r.store.proposals {
		if r.proposalVisibleLocked(proposal, user) {
			proposals = append(proposals, r.store.hydrateProposal(proposal))
		}
	}
	sort.Slice(proposals, func(i, j int) bool { return proposals[i].ID < proposals[j].ID })
	return proposals, nil
}

func (r *memoryProposalRepository) FindByScope(user *models.AuthUser, id uint) (*models.Proposal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	proposal, ok := r.store.proposals[id]
	if !ok || !r.proposalVisibleLocked(proposal, user) {
		return nil, ErrNotFound
	}
	hydrated := r.store.hydrateProposal(proposal)
	return &hydrated, nil
}

func (r *memoryProposalRepository) FindByID(id uint) (*models.Proposal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	proposal, ok := r.store.proposals[id]
	if !ok {
		return nil, ErrNotFound
	}
	hydrated := r.store.hydrateProposal(proposal)
	return &hydrated, nil
}

func (r *memoryProposalRepository) Create(proposal *models.Proposal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if proposal.ID == 0 {
		proposal.ID = r.store.allocID()
	}
	r.store.proposalServices[proposal.ID] = serviceIDs(proposal.Services)
	stored := *proposal
	stored.Inquiry = models.Inquiry{}
	stored.Services = nil
	r.store.proposals[proposal.ID] = stored
	return nil
}

func (r *memoryProposalRepository) Update(proposal *models.Proposal, services *[]models.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if services != nil {
		r.store.proposalServices[proposal.ID] = serviceIDs(*services)
	}
	stored := *proposal
	stored.Inquiry = models.Inquiry{}
	stored.Services = nil
	r.store.proposals[proposal.ID] = stored
	return nil
}

func (r *memoryProposalRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.proposals, id)
	delete(r.store.proposalServices, id)
	return nil
}
