// Package authz 提供群组所有权鉴权
// 所有权比较只在这里做一次，各个需要鉴权的写操作统一调用，不得各自复制比较逻辑
package authz

import (
	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/pkg/errorx"
)

// Checker 所有权检查器
type Checker struct {
	repos *repository.Repositories
}

// NewChecker 构造函数，注入 Repository 依赖
func NewChecker(repos *repository.Repositories) *Checker {
	return &Checker{repos: repos}
}

// IsOwner 判断 callerExternalId 是否为群组的群主
// 群组不存在时返回 CodeNotFound 错误，由调用方按 "群组不存在" 处理；
// 群组无主、调用者为空或与群主身份不符时返回 false，不产生错误
func (c *Checker) IsOwner(groupId uint, callerExternalId string) (bool, error) {
	group, err := c.repos.Group.FindById(groupId)
	if err != nil {
		return false, err
	}
	if group.OwnerId == nil || callerExternalId == "" {
		return false, nil
	}

	owner, err := c.repos.User.FindById(*group.OwnerId)
	if err != nil {
		if errorx.IsNotFound(err) {
			// 群主已不存在（弱引用悬空），视为无人拥有
			return false, nil
		}
		return false, err
	}
	return owner.ExternalId != nil && *owner.ExternalId == callerExternalId, nil
}
