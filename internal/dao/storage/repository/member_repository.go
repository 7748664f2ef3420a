// Package repository 提供数据访问层的具体实现
// 本文件实现 MemberRepository 接口，处理群组成员关系的数据库操作
package repository

import (
	"class_directory_server/internal/model"

	"gorm.io/gorm"
)

// memberRepository MemberRepository 接口的实现
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建 MemberRepository 实例
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Exists 判断成员关系是否存在
func (r *memberRepository) Exists(groupId, userId uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.GroupUser{}).
		Where("group_id = ? AND user_id = ?", groupId, userId).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询成员关系 group_id=%d user_id=%d", groupId, userId)
	}
	return count > 0, nil
}

// Create 建立成员关系
func (r *memberRepository) Create(edge *model.GroupUser) error {
	if err := r.db.Create(edge).Error; err != nil {
		return wrapDBError(err, "创建成员关系")
	}
	return nil
}

// Delete 删除成员关系
// 返回是否删到了记录，关系本就不存在不算数据库错误
func (r *memberRepository) Delete(groupId, userId uint) (bool, error) {
	res := r.db.Where("group_id = ? AND user_id = ?", groupId, userId).Delete(&model.GroupUser{})
	if res.Error != nil {
		return false, wrapDBErrorf(res.Error, "删除成员关系 group_id=%d user_id=%d", groupId, userId)
	}
	return res.RowsAffected > 0, nil
}

// DeleteByGroupId 删除群组的全部成员关系
// 删群时级联调用，只清关联记录，不动用户行
func (r *memberRepository) DeleteByGroupId(groupId uint) error {
	if err := r.db.Where("group_id = ?", groupId).Delete(&model.GroupUser{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群所有成员关系 group_id=%d", groupId)
	}
	return nil
}

// FindGroupsByUserId 查找用户加入的所有群组
// JOIN 关联表取群组信息
func (r *memberRepository) FindGroupsByUserId(userId uint) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Table("groups").
		Joins("JOIN group_user ON group_user.group_id = groups.id").
		Where("group_user.user_id = ?", userId).
		Find(&groups).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户所在群组 user_id=%d", userId)
	}
	return groups, nil
}

// FindUsersByGroupId 查找群组的所有成员
func (r *memberRepository) FindUsersByGroupId(groupId uint) ([]model.User, error) {
	var users []model.User
	if err := r.db.Table("users").
		Joins("JOIN group_user ON group_user.user_id = users.id").
		Where("group_user.group_id = ?", groupId).
		Find(&users).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群成员 group_id=%d", groupId)
	}
	return users, nil
}

// CountByUserId 统计用户所在群组数
// 成员关系数降为 0 是停用账号的触发条件
func (r *memberRepository) CountByUserId(userId uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.GroupUser{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计用户所在群组数 user_id=%d", userId)
	}
	return count, nil
}

// CountByGroupId 统计群组成员数
func (r *memberRepository) CountByGroupId(groupId uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.GroupUser{}).Where("group_id = ?", groupId).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计群组成员数 group_id=%d", groupId)
	}
	return count, nil
}
