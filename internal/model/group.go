package model

import "time"

// Group 群组模型
// 对应数据库 groups 表
type Group struct {
	Id          uint   `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;uniqueIndex;type:varchar(255);not null;comment:群组名称"`
	Description string `gorm:"column:description;type:text;comment:群组描述"`

	// OwnerId 群主（教师）的用户主键，弱引用：群组不拥有用户的生命周期
	OwnerId *uint `gorm:"column:owner_id;index;comment:群主用户id"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Group) TableName() string {
	return "groups"
}
