package controllers

import (
	"errors"
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// GetProposalList 获取报价单列表
// 归属按关联咨询单的销售代表判定
func GetProposalList(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	proposals, err := repository.Proposals.ListByScope(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(proposals) == 0 {
		utils.Respond(c, http.StatusOK, "No proposals found.", []models.ProposalResponse{})
		return
	}
	utils.Respond(c, http.StatusOK, "Proposals retrieved successfully.", models.NewProposalResponseList(proposals))
}

// GetProposalDetail 获取报价单详情
func GetProposalDetail(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Proposal not found.", nil)
		return
	}

	proposal, err := repository.Proposals.FindByScope(user, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Proposal not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal retrieved successfully.", models.NewProposalResponse(*proposal))
}

// CreateProposal 创建报价单
func CreateProposal(c *gin.Context) {
	var req models.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	errs := fieldErrors{}
	if req.Inquiry == nil {
		errs.add("inquiry", msgFieldRequired)
	} else if _, err := repository.Inquiries.FindByID(*req.Inquiry); err != nil {
		errs.add("inquiry", invalidPK(*req.Inquiry))
	}

	if req.Details == nil || *req.Details == "" {
		errs.add("details", msgFieldRequired)
	}

	status := models.ProposalStatusPENDING
	if req.Status != nil {
		if !models.ValidProposalStatus(*req.Status) {
			errs.add("status", invalidChoice(string(*req.Status)))
		} else {
			status = *req.Status
		}
	}

	if req.Cost == nil {
		errs.add("cost", msgFieldRequired)
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

	proposal := models.Proposal{
		InquiryID: *req.Inquiry,
		Details:   *req.Details,
		Status:    status,
		Cost:      *req.Cost,
		Services:  services,
	}
	if err := repository.Proposals.Create(&proposal); err != nil {
		utils.HandleError(c, err)
		return
	}

	created, err := repository.Proposals.FindByID(proposal.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Proposal created successfully.", models.NewProposalResponse(*created))
}

// updateProposal PUT/PATCH共用的更新逻辑
// 更新不做归属校验，管理员和销售代表都可以改任意报价单
func updateProposal(c *gin.Context, partial bool) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Proposal not found.", nil)
		return
	}

	proposal, err := repository.Proposals.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Proposal not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	var req models.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidData, nil)
		return
	}

	errs := fieldErrors{}
	if req.Inquiry == nil {
		if !partial {
			errs.add("inquiry", msgFieldRequired)
		}
	} else if _, err := repository.Inquiries.FindByID(*req.Inquiry); err != nil {
		errs.add("inquiry", invalidPK(*req.Inquiry))
	}

	if req.Details == nil {
		if !partial {
			errs.add("details", msgFieldRequired)
		}
	} else if *req.Details == "" {
		errs.add("details", "This field may not be blank.")
	}

	if req.Status != nil && !models.ValidProposalStatus(*req.Status) {
		errs.add("status", invalidChoice(string(*req.Status)))
	}

	if req.Cost == nil && !partial {
		errs.add("cost", msgFieldRequired)
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

	if req.Inquiry != nil {
		proposal.InquiryID = *req.Inquiry
	}
	if req.Details != nil {
		proposal.Details = *req.Details
	}
	if req.Status != nil {
		proposal.Status = *req.Status
	}
	if req.Cost != nil {
		proposal.Cost = *req.Cost
	}

	if err := repository.Proposals.Update(proposal, services); err != nil {
		utils.HandleError(c, err)
		return
	}

	updated, err := repository.Proposals.FindByID(proposal.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal updated successfully.", models.NewProposalResponse(*updated))
}

// UpdateProposal 全量更新报价单
func UpdateProposal(c *gin.Context) {
	updateProposal(c, false)
}

// PatchProposal 部分更新报价单
func PatchProposal(c *gin.Context) {
	updateProposal(c, true)
}

// DeleteProposal 删除报价单
func DeleteProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.Respond(c, http.StatusNotFound, "Proposal not found.", nil)
		return
	}

	if _, err := repository.Proposals.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Respond(c, http.StatusNotFound, "Proposal not found.", nil)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if err := repository.Proposals.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal successfully deleted.", nil)
}
