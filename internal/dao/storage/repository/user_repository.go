// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口，处理用户相关的数据库操作
package repository

import (
	"class_directory_server/internal/model"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindById 按主键查找用户
func (r *userRepository) FindById(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 id=%d", id)
	}
	return &user, nil
}

// FindByExternalId 按平台身份标识查找用户
func (r *userRepository) FindByExternalId(externalId string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "external_id = ?", externalId).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 external_id=%s", externalId)
	}
	return &user, nil
}

// FindByUsername 按用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 username=%s", username)
	}
	return &user, nil
}

// FindAll 查找所有用户
func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "查询用户列表")
	}
	return users, nil
}

// Create 创建用户
// 唯一索引冲突（提交时竞争）由 wrapDBError 翻译为 CodeConflict
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 更新用户信息（全字段更新）
func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "更新用户信息")
	}
	return nil
}

// UpdateActivated 更新激活状态
func (r *userRepository) UpdateActivated(id uint, activated bool) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("is_activated", activated).Error; err != nil {
		return wrapDBErrorf(err, "更新用户激活状态 id=%d", id)
	}
	return nil
}
