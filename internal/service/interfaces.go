// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/dto/respond"
)

// UserService 用户业务接口
// 处理用户创建、查询、激活状态管理等功能
type UserService interface {
	// CreateUser 创建用户，external_id 与 username 至少填一个
	CreateUser(req request.CreateUserRequest) (*respond.CreateUserRespond, error)
	// GetUserByExternalId 按平台身份标识查询用户（含所在群组列表）
	GetUserByExternalId(externalId string) (*respond.GetUserInfoRespond, error)
	// GetUserByUsername 按用户名查询用户（含所在群组列表）
	GetUserByUsername(username string) (*respond.GetUserInfoRespond, error)
	// GetUserList 获取所有用户及各自的群组数
	GetUserList() ([]respond.GetUserListRespond, error)
	// SetActivated 设置激活状态（幂等）
	SetActivated(req request.SetActivatedRequest) (*respond.SetActivatedRespond, error)
	// BindExternalId 为仅有用户名的账号补绑平台身份
	BindExternalId(req request.BindExternalIdRequest) (*respond.CreateUserRespond, error)
}

// GroupService 群组业务接口
// 处理群组创建、删除、成员管理等功能
type GroupService interface {
	// CreateGroup 创建群组，解析成员用户名并激活加入成功的成员
	CreateGroup(req request.CreateGroupRequest) (*respond.CreateGroupRespond, error)
	// DeleteGroup 删除群组并级联清除成员关系，返回群组是否存在过
	DeleteGroup(req request.DeleteGroupRequest) (*respond.DeleteGroupRespond, error)
	// AddMember 添加群成员（幂等），带调用者身份时做群主鉴权并激活该成员
	AddMember(req request.AddMemberRequest) error
	// RemoveMember 移除群成员，移除后所在群组数为 0 的用户被停用
	RemoveMember(req request.RemoveMemberRequest) error
	// GetGroupById 按主键查询群组详情（含群主与成员列表）
	GetGroupById(groupId uint) (*respond.GetGroupInfoRespond, error)
	// GetGroupByName 按名称查询群组详情（含群主与成员列表）
	GetGroupByName(name string) (*respond.GetGroupInfoRespond, error)
	// LoadOwnedGroups 获取指定群主创建的群组列表
	LoadOwnedGroups(ownerExternalId string) ([]respond.GetGroupListRespond, error)
	// GetGroupList 获取所有群组及各自的成员数
	GetGroupList() ([]respond.GetGroupListRespond, error)
}

// AccountService 账号业务接口
// 组合本地存储与注册中心、智能体两个上游协作方
type AccountService interface {
	// CreateTeacherAccount 创建教师账号并向注册中心登记 teacher 角色
	CreateTeacherAccount(ctx context.Context, req request.CreateTeacherRequest) (*respond.CreateAccountRespond, error)
	// CreateStudentAccount 创建学生账号，用户名由智能体生成并登记 student 角色
	CreateStudentAccount(ctx context.Context, req request.CreateStudentRequest) (*respond.CreateAccountRespond, error)
	// GetDirectory 本地用户与注册中心角色的合并目录
	GetDirectory(ctx context.Context) ([]respond.DirectoryEntryRespond, error)
	// AskTutor 代理学生的答疑请求
	AskTutor(ctx context.Context, req request.AskTutorRequest) (*respond.AskTutorRespond, error)
}
