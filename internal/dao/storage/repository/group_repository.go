// Package repository 提供数据访问层的具体实现
// 本文件实现 GroupRepository 接口，处理群组相关的数据库操作
package repository

import (
	"class_directory_server/internal/model"

	"gorm.io/gorm"
)

// groupRepository GroupRepository 接口的实现
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository 创建 GroupRepository 实例
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// FindById 按主键查找群组
func (r *groupRepository) FindById(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 id=%d", id)
	}
	return &group, nil
}

// FindByName 按名称查找群组
func (r *groupRepository) FindByName(name string) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, "name = ?", name).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 name=%s", name)
	}
	return &group, nil
}

// FindByOwnerId 按群主查找其所有群组
func (r *groupRepository) FindByOwnerId(ownerId uint) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Where("owner_id = ?", ownerId).Find(&groups).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 owner_id=%d", ownerId)
	}
	return groups, nil
}

// FindAll 查找所有群组
func (r *groupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, wrapDBError(err, "查询所有群组")
	}
	return groups, nil
}

// Create 创建群组
// 名称唯一索引冲突（提交时竞争）由 wrapDBError 翻译为 CodeConflict
func (r *groupRepository) Create(group *model.Group) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "创建群组")
	}
	return nil
}

// Delete 物理删除群组
// 返回是否存在过（RowsAffected > 0），不存在不算错误
func (r *groupRepository) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&model.Group{})
	if res.Error != nil {
		return false, wrapDBErrorf(res.Error, "删除群组 id=%d", id)
	}
	return res.RowsAffected > 0, nil
}
