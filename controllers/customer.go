package controllers

import (
	"errors"
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// GetCustomerList 获取客户列表
// 管理员看全部，销售代表只看归属自己的客户；空集返回200而不是错误
func GetCustomerList(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	customers, err := repository.Customers.ListByScope(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(customers) == 0 {
		utils.Respond(c, http.StatusOK, "No customers found.", []models.Customer{})
		return
	}
	utils.Respond(c, http.StatusOK, "Customers retrieved successfully.", customers)
}

// GetCustomerDetail 获取客户详情
// 范围之外的记录一律按404处理，不暴露其存在性
func GetCustomerDetail(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Customer not found.", nil)
		return
	}

	customer, err := repository.Customers.FindByScope(user, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Customer not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Customer retrieved successfully.", customer)
}

// validateCustomerRequest 校验客户写入请求
// partial为true时只校验提供的字段；excludeID排除自身的邮箱唯一性检查
func validateCustomerRequest(req *models.CustomerRequest, partial bool, excludeID uint) fieldErrors {
	errs := fieldErrors{}

	if req.Name == nil {
		if !partial {
			errs.add("name", msgFieldRequired)
		}
	} else if *req.Name == "" {
		errs.add("name", "This field may not be blank.")
	}

	if req.Email == nil {
		if !partial {
			errs.add("email", msgFieldRequired)
		}
	} else if !utils.IsValidEmail(*req.Email) {
		errs.add("email", "Enter a valid email address.")
	} else if existing, err := repository.Customers.FindByEmail(*req.Email); err == nil && existing.ID != excludeID {
		errs.add("email", "customer with this email already exists.")
	}

	if req.PhoneNo == nil && !partial {
		errs.add("phone_no", msgFieldRequired)
	}
	if req.Address == nil && !partial {
		errs.add("address", msgFieldRequired)
	}

	return errs
}

// CreateCustomer 创建客户
// assigned_sales_agent 固定为当前用户，payload里的值被忽略
func CreateCustomer(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	if errs := validateCustomerRequest(&req, false, 0); !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, errs)
		return
	}

	agentID := user.ID
	customer := models.Customer{
		Name:                 *req.Name,
		Email:                *req.Email,
		PhoneNo:              *req.PhoneNo,
		Address:              *req.Address,
		AssignedSalesAgentID: &agentID,
	}
	if err := repository.Customers.Save(&customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Customer created successfully.", customer)
}

// updateCustomer PUT/PATCH共用的更新逻辑
func updateCustomer(c *gin.Context, partial bool) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Customer not found.", nil)
		return
	}

	customer, err := repository.Customers.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Customer not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	// 已确认存在的记录，归属不符时返回403
	if utils.IsSalesAgent(user) {
		if customer.AssignedSalesAgentID == nil || *customer.AssignedSalesAgentID != user.ID {
			utils.Respond(c, http.StatusForbidden, "You do not have permission to update this customer.", nil)
			return
		}
	}

	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, nil)
		return
	}

	if errs := validateCustomerRequest(&req, partial, customer.ID); !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, errs)
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNo != nil {
		customer.PhoneNo = *req.PhoneNo
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := repository.Customers.Save(customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Customer updated successfully.", customer)
}

// UpdateCustomer 全量更新客户
func UpdateCustomer(c *gin.Context) {
	updateCustomer(c, false)
}

// PatchCustomer 部分更新客户
func PatchCustomer(c *gin.Context) {
	updateCustomer(c, true)
}

// DeleteCustomer 删除客户，仅管理员可用
func DeleteCustomer(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Customer not found.", nil)
		return
	}

	if _, err := repository.Customers.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Customer not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !utils.IsAdmin(user) {
		utils.Respond(c, http.StatusForbidden, "Sales agents are not allowed to delete customers.", nil)
		return
	}

	if err := repository.Customers.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Customer successfully deleted.", nil)
}
