package request

// AddMemberRequest 添加群成员请求
// user_identity 为 external_id 或 username 均可
// caller_external_id 非空时执行 owner 鉴权，并在加入时激活该用户
type AddMemberRequest struct {
	GroupId          uint   `json:"group_id" binding:"required"`
	UserIdentity     string `json:"user_identity" binding:"required"`
	CallerExternalId string `json:"caller_external_id"`
}
