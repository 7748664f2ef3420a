// Package model 定义数据库实体模型
// 本文件定义用户模型，外部身份（external_id）与用户名（username）二者至少存在其一
package model

import "time"

// User 用户模型
// 对应数据库 users 表
//
// 不内嵌 gorm.Model：本服务删除群组时只做物理级联删除关联记录，
// 不需要软删除语义，且软删除行会与唯一索引互相干扰
type User struct {
	// Id 存储层分配的主键，创建后不可变
	Id uint `gorm:"column:id;primaryKey"`

	// ExternalId 所属平台分配的稳定身份标识（可空，唯一）
	// 使用指针以便数据库存 NULL，多个未绑定用户不会在唯一索引上冲突
	ExternalId *string `gorm:"column:external_id;uniqueIndex;type:varchar(255);comment:平台身份标识"`

	// Username 展示用用户名（可空，唯一）
	Username *string `gorm:"column:username;uniqueIndex;type:varchar(255);comment:用户名"`

	FirstName string `gorm:"column:first_name;type:varchar(255);comment:名"`
	LastName  string `gorm:"column:last_name;type:varchar(255);comment:姓"`

	// IsActivated 账号激活状态，默认未激活
	// 被群主加入群组时激活；所在群组数降为 0 时停用
	IsActivated bool `gorm:"column:is_activated;not null;default:false;comment:是否已激活"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// HasIdentity 判断是否至少携带一个身份字段
// 创建用户的前置校验：external_id 和 username 不能同时为空
func (u *User) HasIdentity() bool {
	return (u.ExternalId != nil && *u.ExternalId != "") ||
		(u.Username != nil && *u.Username != "")
}
