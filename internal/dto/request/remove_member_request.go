package request

// RemoveMemberRequest 移除群成员请求
// caller_external_id 非空时执行 owner 鉴权；
// 移除后该用户所在群组数为 0 时将被停用
type RemoveMemberRequest struct {
	GroupId          uint   `json:"group_id" binding:"required"`
	UserIdentity     string `json:"user_identity" binding:"required"`
	CallerExternalId string `json:"caller_external_id"`
}
