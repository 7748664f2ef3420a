package respond

import "time"

// CreateUserRespond 创建用户响应
// 返回存储层分配的主键与时间戳
type CreateUserRespond struct {
	Id          uint      `json:"id"`
	ExternalId  string    `json:"external_id,omitempty"`
	Username    string    `json:"username,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	IsActivated bool      `json:"is_activated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
