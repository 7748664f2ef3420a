package respond

import "time"

// CreateGroupRespond 创建群组响应
// added_count / skipped_count 对应建群时成员用户名的解析结果
type CreateGroupRespond struct {
	Id           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Owner        *GroupOwnerInfo `json:"owner,omitempty"`
	AddedCount   int             `json:"added_count"`
	SkippedCount int             `json:"skipped_count"`
	CreatedAt    time.Time       `json:"created_at"`
}
