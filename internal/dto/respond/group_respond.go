package respond

import "time"

// GroupOwnerInfo 群主公开信息
type GroupOwnerInfo struct {
	Id         uint   `json:"id"`
	ExternalId string `json:"external_id,omitempty"`
	Username   string `json:"username,omitempty"`
}

// GroupMemberItem 群成员公开信息
type GroupMemberItem struct {
	Id         uint   `json:"id"`
	ExternalId string `json:"external_id,omitempty"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// GetGroupInfoRespond 群组详情响应
// 查询时刻的快照，含群主信息与完整成员列表
// 使用位置:
//   - internal/service/group/service.go: GetGroupById / GetGroupByName
type GetGroupInfoRespond struct {
	Id          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Owner       *GroupOwnerInfo   `json:"owner,omitempty"`
	Users       []GroupMemberItem `json:"users"`
	UsersCount  int               `json:"users_count"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
