package respond

import "time"

// GetGroupListRespond 群组列表条目
// 扫描场景只带 users_count，不展开成员明细
type GetGroupListRespond struct {
	Id          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerId     uint      `json:"owner_id,omitempty"`
	UsersCount  int64     `json:"users_count"`
	CreatedAt   time.Time `json:"created_at"`
}
