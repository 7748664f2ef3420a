package respond

import "time"

// CreateAccountRespond 创建教师/学生账号响应
type CreateAccountRespond struct {
	Id         uint      `json:"id"`
	ExternalId string    `json:"external_id,omitempty"`
	Username   string    `json:"username,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// DirectoryEntryRespond 目录条目
// 本地用户信息与注册中心角色的合并视图
type DirectoryEntryRespond struct {
	Id          uint   `json:"id"`
	ExternalId  string `json:"external_id,omitempty"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	IsActivated bool   `json:"is_activated"`
	Role        string `json:"role,omitempty"`
	GroupsCount int64  `json:"groups_count"`
}

// AskTutorRespond 答疑响应
type AskTutorRespond struct {
	Answer string `json:"answer"`
}
