package respond

import "time"

// GetUserListRespond 用户列表条目
// 列表场景只带 groups_count，不展开群组明细
type GetUserListRespond struct {
	Id          uint      `json:"id"`
	ExternalId  string    `json:"external_id,omitempty"`
	Username    string    `json:"username,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	IsActivated bool      `json:"is_activated"`
	CreatedAt   time.Time `json:"created_at"`
	GroupsCount int64     `json:"groups_count"`
}
