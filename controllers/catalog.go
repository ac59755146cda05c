package controllers

import (
	"errors"
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// GetServiceList 获取服务目录
// 服务无归属维度，管理员和销售代表都能看到全量目录
func GetServiceList(c *gin.Context) {
	services, err := repository.Services.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(services) == 0 {
		utils.Respond(c, http.StatusOK, "No services found.", []models.Service{})
		return
	}
	utils.Respond(c, http.StatusOK, "Services retrieved successfully.", services)
}

// GetServiceDetail 获取服务详情
func GetServiceDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Service not found.", nil)
		return
	}

	service, err := repository.Services.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Service not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Service retrieved successfully.", service)
}

// validateServiceRequest 校验服务写入请求，price可空且不做数值校验
func validateServiceRequest(req *models.ServiceRequest, partial bool) fieldErrors {
	errs := fieldErrors{}

	if req.Name == nil {
		if !partial {
			errs.add("name", msgFieldRequired)
		}
	} else if *req.Name == "" {
		errs.add("name", "This field may not be blank.")
	}

	if req.Description == nil && !partial {
		errs.add("description", msgFieldRequired)
	}

	return errs
}

// CreateService 创建服务，管理员和销售代表都可用
func CreateService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	if errs := validateServiceRequest(&req, false); !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, errs)
		return
	}

	service := models.Service{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       req.Price,
	}
	if err := repository.Services.Save(&service); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Service created successfully.", service)
}

// updateService PUT/PATCH共用的更新逻辑
func updateService(c *gin.Context, partial bool) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Service not found.", nil)
		return
	}

	service, err := repository.Services.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Service not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, nil)
		return
	}

	if errs := validateServiceRequest(&req, partial); !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, errs)
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = req.Price
	}

	if err := repository.Services.Save(service); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Service updated successfully.", service)
}

// UpdateService 全量更新服务
func UpdateService(c *gin.Context) {
	updateService(c, false)
}

// PatchService 部分更新服务
func PatchService(c *gin.Context) {
	updateService(c, true)
}

// DeleteService 删除服务，管理员和销售代表都可用
func DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Service not found.", nil)
		return
	}

	if _, err := repository.Services.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Service not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if err := repository.Services.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Service successfully deleted.", nil)
}
