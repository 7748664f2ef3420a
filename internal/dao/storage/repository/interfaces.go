// Package repository 定义数据访问层接口和聚合结构
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"class_directory_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindById 根据主键查找用户
	FindById(id uint) (*model.User, error)
	// FindByExternalId 根据平台身份标识查找用户
	FindByExternalId(externalId string) (*model.User, error)
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// FindAll 查找所有用户
	FindAll() ([]model.User, error)
	// Create 创建用户（唯一索引冲突返回 CodeConflict）
	Create(user *model.User) error
	// Update 更新用户信息（全字段）
	Update(user *model.User) error
	// UpdateActivated 更新激活状态
	UpdateActivated(id uint, activated bool) error
}

// GroupRepository 群组数据访问接口
type GroupRepository interface {
	// FindById 根据主键查找群组
	FindById(id uint) (*model.Group, error)
	// FindByName 根据名称查找群组
	FindByName(name string) (*model.Group, error)
	// FindByOwnerId 根据群主查找其所有群组
	FindByOwnerId(ownerId uint) ([]model.Group, error)
	// FindAll 查找所有群组
	FindAll() ([]model.Group, error)
	// Create 创建群组（名称唯一索引冲突返回 CodeConflict）
	Create(group *model.Group) error
	// Delete 物理删除群组，返回是否存在过
	Delete(id uint) (bool, error)
}

// MemberRepository 群组成员关系数据访问接口
// 关系是 (group_id, user_id) 的存在性集合，无多重性
type MemberRepository interface {
	// Exists 判断成员关系是否存在
	Exists(groupId, userId uint) (bool, error)
	// Create 建立成员关系
	Create(edge *model.GroupUser) error
	// Delete 删除成员关系，返回是否删到了记录
	Delete(groupId, userId uint) (bool, error)
	// DeleteByGroupId 删除群组的全部成员关系（删群级联，不动用户行）
	DeleteByGroupId(groupId uint) error
	// FindGroupsByUserId 查找用户加入的所有群组
	FindGroupsByUserId(userId uint) ([]model.Group, error)
	// FindUsersByGroupId 查找群组的所有成员
	FindUsersByGroupId(groupId uint) ([]model.User, error)
	// CountByUserId 统计用户所在群组数
	CountByUserId(userId uint) (int64, error)
	// CountByGroupId 统计群组成员数
	CountByGroupId(groupId uint) (int64, error)
}

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db     *gorm.DB
	User   UserRepository
	Group  GroupRepository
	Member MemberRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:     db,
		User:   NewUserRepository(db),
		Group:  NewGroupRepository(db),
		Member: NewMemberRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn 返回错误时自动回滚，包括本地写入之后上游调用失败的场景
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
