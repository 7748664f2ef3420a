package request

// CreateGroupRequest 创建群组请求
// member_usernames 中解析不到的用户名会被跳过并计入 skipped_count
// 使用位置:
//   - internal/handler/group_handler.go: CreateGroup
//   - internal/service/group/service.go: CreateGroup
type CreateGroupRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	OwnerExternalId string   `json:"owner_external_id"`
	MemberUsernames []string `json:"member_usernames"`
}
