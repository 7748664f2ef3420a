package respond

import "time"

// UserGroupItem 用户详情中的所在群组条目
type UserGroupItem struct {
	Id          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetUserInfoRespond 用户详情响应
// 包含解析后的所在群组列表
// 使用位置:
//   - internal/service/user/service.go: GetUserByExternalId / GetUserByUsername
type GetUserInfoRespond struct {
	Id          uint            `json:"id"`
	ExternalId  string          `json:"external_id,omitempty"`
	Username    string          `json:"username,omitempty"`
	FirstName   string          `json:"first_name,omitempty"`
	LastName    string          `json:"last_name,omitempty"`
	IsActivated bool            `json:"is_activated"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Groups      []UserGroupItem `json:"groups"`
	GroupsCount int             `json:"groups_count"`
}
