// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/internal/infrastructure/agent"
	"class_directory_server/internal/infrastructure/registry"
	"class_directory_server/internal/service/account"
	"class_directory_server/internal/service/authz"
	"class_directory_server/internal/service/group"
	"class_directory_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	User    UserService    // 用户 Service
	Group   GroupService   // 群组 Service
	Account AccountService // 账号 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合实例与两个上游客户端
//  2. 创建各个 Service 实例，注入依赖
//  3. 返回 Services 聚合
func NewServices(repos *repository.Repositories, registryClient registry.Client, agentClient agent.Client) *Services {
	checker := authz.NewChecker(repos)

	userSvc := user.NewUserService(repos)
	groupSvc := group.NewGroupService(repos, checker)
	accountSvc := account.NewAccountService(repos, registryClient, agentClient)

	return &Services{
		User:    userSvc,
		Group:   groupSvc,
		Account: accountSvc,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.User.CreateUser() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 与上游客户端初始化之后
func InitServices(repos *repository.Repositories, registryClient registry.Client, agentClient agent.Client) {
	Svc = NewServices(repos, registryClient, agentClient)
}
