// Package handler 提供 HTTP 请求处理器
// 本文件处理群组相关的 API 请求
package handler

import (
	"strconv"

	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/service"
	"class_directory_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// GroupHandler 群组请求处理器
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建群组处理器实例
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// CreateGroup 创建群组
// POST /group/createGroup
// 请求体: request.CreateGroupRequest
// 响应: respond.CreateGroupRespond
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.CreateGroup(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteGroup 删除群组
// POST /group/deleteGroup
// 请求体: request.DeleteGroupRequest
// 响应: respond.DeleteGroupRespond
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	var req request.DeleteGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.DeleteGroup(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AddMember 添加群成员
// POST /group/addMember
// 请求体: request.AddMemberRequest
// 响应: nil
func (h *GroupHandler) AddMember(c *gin.Context) {
	var req request.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.AddMember(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RemoveMember 移除群成员
// POST /group/removeMember
// 请求体: request.RemoveMemberRequest
// 响应: nil
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	var req request.RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.RemoveMember(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetGroupInfo 获取群组详情
// GET /group/getGroupInfo?groupId=1
// 响应: respond.GetGroupInfoRespond
func (h *GroupHandler) GetGroupInfo(c *gin.Context) {
	groupId, err := strconv.ParseUint(c.Query("groupId"), 10, 64)
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "groupId 必须为正整数"))
		return
	}
	data, err := h.groupSvc.GetGroupById(uint(groupId))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetGroupByName 按名称获取群组详情
// GET /group/getGroupByName?name=xxx
// 响应: respond.GetGroupInfoRespond
func (h *GroupHandler) GetGroupByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "name 不能为空"))
		return
	}
	data, err := h.groupSvc.GetGroupByName(name)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// LoadMyGroup 获取指定群主创建的群组
// GET /group/loadMyGroup?ownerExternalId=xxx
// 响应: []respond.GetGroupListRespond
func (h *GroupHandler) LoadMyGroup(c *gin.Context) {
	ownerExternalId := c.Query("ownerExternalId")
	if ownerExternalId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "ownerExternalId 不能为空"))
		return
	}
	data, err := h.groupSvc.LoadOwnedGroups(ownerExternalId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetGroupList 获取所有群组
// GET /group/getGroupList
// 响应: []respond.GetGroupListRespond
func (h *GroupHandler) GetGroupList(c *gin.Context) {
	data, err := h.groupSvc.GetGroupList()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
