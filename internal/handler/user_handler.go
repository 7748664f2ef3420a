// Package handler 提供 HTTP 请求处理器
// 本文件处理用户相关的 API 请求
package handler

import (
	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/service"
	"class_directory_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
// 通过构造函数注入 UserService，遵循依赖倒置原则
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser 创建用户
// POST /user/createUser
// 请求体: request.CreateUserRequest
// 响应: respond.CreateUserRespond
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.CreateUser(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserByExternalId 按平台身份标识查询用户
// GET /user/getUserByExternalId?externalId=xxx
// 响应: respond.GetUserInfoRespond
func (h *UserHandler) GetUserByExternalId(c *gin.Context) {
	externalId := c.Query("externalId")
	if externalId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "externalId 不能为空"))
		return
	}
	data, err := h.userSvc.GetUserByExternalId(externalId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserByUsername 按用户名查询用户
// GET /user/getUserByUsername?username=xxx
// 响应: respond.GetUserInfoRespond
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "username 不能为空"))
		return
	}
	data, err := h.userSvc.GetUserByUsername(username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserList 获取所有用户
// GET /user/getUserList
// 响应: []respond.GetUserListRespond
func (h *UserHandler) GetUserList(c *gin.Context) {
	data, err := h.userSvc.GetUserList()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SetActivated 设置用户激活状态
// POST /user/setActivated
// 请求体: request.SetActivatedRequest
// 响应: respond.SetActivatedRespond
func (h *UserHandler) SetActivated(c *gin.Context) {
	var req request.SetActivatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.SetActivated(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// BindExternalId 为仅有用户名的账号补绑平台身份
// POST /user/bindExternalId
// 请求体: request.BindExternalIdRequest
// 响应: respond.CreateUserRespond
func (h *UserHandler) BindExternalId(c *gin.Context) {
	var req request.BindExternalIdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.BindExternalId(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
