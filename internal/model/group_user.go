package model

// GroupUser 群组成员关联表
// (group_id, user_id) 复合主键：一条记录即一条成员关系，
// 无顺序、无重复、无附加载荷
type GroupUser struct {
	GroupId uint `gorm:"column:group_id;primaryKey;comment:群组ID"`
	UserId  uint `gorm:"column:user_id;primaryKey;comment:用户ID"`
}

func (GroupUser) TableName() string {
	return "group_user"
}
