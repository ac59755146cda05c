package controllers

import (
	"errors"
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// resolveServices 把服务主键列表解析为实体，缺失的主键记入字段错误
func resolveServices(ids []uint, errs fieldErrors) []models.Service {
	services, err := repository.Services.FindByIDs(ids)
	if err != nil {
		errs.add("services", "Unable to resolve services.")
		return nil
	}

	found := make(map[uint]bool, len(services))
	for _, svc := range services {
		found[svc.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			errs.add("services", invalidPK(id))
		}
	}
	return services
}

// GetInquiryList 获取咨询单列表
func GetInquiryList(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	inquiries, err := repository.Inquiries.ListByScope(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(inquiries) == 0 {
		utils.Respond(c, http.StatusOK, "No inquiries found.", []models.InquiryResponse{})
		return
	}
	utils.Respond(c, http.StatusOK, "Inquiries retrieved successfully.", models.NewInquiryResponseList(inquiries))
}

// GetInquiryDetail 获取咨询单详情，关联对象完整展开
func GetInquiryDetail(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Inquiry not found.", nil)
		return
	}

	inquiry, err := repository.Inquiries.FindByScope(user, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Inquiry not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Inquiry retrieved successfully.", models.NewInquiryResponse(*inquiry))
}

// CreateInquiry 创建咨询单
// 写入时关联字段用主键；assigned_sales_agent 固定为当前用户
func CreateInquiry(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	errs := fieldErrors{}
	if req.Details == nil || *req.Details == "" {
		errs.add("details", msgFieldRequired)
	}

	status := models.InquiryStatusOPEN
	if req.Status != nil {
		if !models.ValidInquiryStatus(*req.Status) {
			errs.add("status", invalidChoice(string(*req.Status)))
		} else {
			status = *req.Status
		}
	}

	if req.Customer == nil {
		errs.add("customer", msgFieldRequired)
	} else if _, err := repository.Customers.FindByID(*req.Customer); err != nil {
		errs.add("customer", invalidPK(*req.Customer))
	}

	var services []models.Service
	if req.Services == nil {
		errs.add("services", msgFieldRequired)
	} else {
		services = resolveServices(*req.Services, errs)
	}

	if !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, errs)
		return
	}

	inquiry := models.Inquiry{
		Details:              *req.Details,
		Status:               status,
		CustomerID:           *req.Customer,
		AssignedSalesAgentID: user.ID,
		Services:             services,
	}
	if err := repository.Inquiries.Create(&inquiry); err != nil {
		utils.HandleError(c, err)
		return
	}

	created, err := repository.Inquiries.FindByID(inquiry.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Inquiry created successfully.", models.NewInquiryResponse(*created))
}

// updateInquiry PUT/PATCH共用的更新逻辑
// 销售代表只能更新归属自己的咨询单；assigned_sales_agent 更新时可覆盖
func updateInquiry(c *gin.Context, partial bool) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Inquiry not found.", nil)
		return
	}

	inquiry, err := repository.Inquiries.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Inquiry not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if utils.IsSalesAgent(user) && inquiry.AssignedSalesAgentID != user.ID {
		utils.Respond(c, http.StatusForbidden, "You are not authorized to update this inquiry.", nil)
		return
	}

	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, nil)
		return
	}

	errs := fieldErrors{}
	if req.Details == nil {
		if !partial {
			errs.add("details", msgFieldRequired)
		}
	} else if *req.Details == "" {
		errs.add("details", "This field may not be blank.")
	}

	if req.Status != nil && !models.ValidInquiryStatus(*req.Status) {
		errs.add("status", invalidChoice(string(*req.Status)))
	}

	if req.Customer == nil {
		if !partial {
			errs.add("customer", msgFieldRequired)
		}
	} else if _, err := repository.Customers.FindByID(*req.Customer); err != nil {
		errs.add("customer", invalidPK(*req.Customer))
	}

	if req.AssignedSalesAgent != nil {
		if _, err := repository.Users.FindByID(*req.AssignedSalesAgent); err != nil {
			errs.add("assigned_sales_agent", invalidPK(*req.AssignedSalesAgent))
		}
	}

	var services *[]models.Service
	if req.Services == nil {
		if !partial {
			errs.add("services", msgFieldRequired)
		}
	} else {
		resolved := resolveServices(*req.Services, errs)
		services = &resolved
	}

	if !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, errs)
		return
	}

	if req.Details != nil {
		inquiry.Details = *req.Details
	}
	if req.Status != nil {
		inquiry.Status = *req.Status
	}
	if req.Customer != nil {
		inquiry.CustomerID = *req.Customer
	}
	if req.AssignedSalesAgent != nil {
		inquiry.AssignedSalesAgentID = *req.AssignedSalesAgent
	}

	if err := repository.Inquiries.Update(inquiry, services); err != nil {
		utils.HandleError(c, err)
		return
	}

	updated, err := repository.Inquiries.FindByID(inquiry.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Inquiry updated successfully.", models.NewInquiryResponse(*updated))
}

// UpdateInquiry 全量更新咨询单
func UpdateInquiry(c *gin.Context) {
	updateInquiry(c, false)
}

// PatchInquiry 部分更新咨询单
func PatchInquiry(c *gin.Context) {
	updateInquiry(c, true)
}

// DeleteInquiry 删除咨询单，仅管理员可用
func DeleteInquiry(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Inquiry not found.", nil)
		return
	}

	if _, err := repository.Inquiries.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Inquiry not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !utils.IsAdmin(user) {
		utils.Respond(c, http.StatusForbidden, "You are not authorized to delete this inquiry.", nil)
		return
	}

	if err := repository.Inquiries.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Inquiry successfully deleted.", nil)
}
