// Package handler 提供 HTTP 请求处理器
// 本文件处理账号流程相关的 API 请求（教师/学生开户、目录、答疑）
package handler

import (
	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler 账号请求处理器
type AccountHandler struct {
	accountSvc service.AccountService
}

// NewAccountHandler 创建账号处理器实例
func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// CreateTeacher 创建教师账号
// POST /account/createTeacher
// 请求体: request.CreateTeacherRequest
// 响应: respond.CreateAccountRespond
func (h *AccountHandler) CreateTeacher(c *gin.Context) {
	var req request.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.accountSvc.CreateTeacherAccount(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateStudent 创建学生账号
// POST /account/createStudent
// 请求体: request.CreateStudentRequest
// 响应: respond.CreateAccountRespond
func (h *AccountHandler) CreateStudent(c *gin.Context) {
	var req request.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.accountSvc.CreateStudentAccount(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetDirectory 获取合并目录
// GET /account/directory
// 响应: []respond.DirectoryEntryRespond
func (h *AccountHandler) GetDirectory(c *gin.Context) {
	data, err := h.accountSvc.GetDirectory(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AskTutor 学生答疑
// POST /account/askTutor
// 请求体: request.AskTutorRequest
// 响应: respond.AskTutorRespond
func (h *AccountHandler) AskTutor(c *gin.Context) {
	var req request.AskTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.accountSvc.AskTutor(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
