package request

// SetActivatedRequest 设置用户激活状态请求
// identity 为 external_id 或 username 均可
// activated 使用指针以区分 "未传" 与 "传 false"
type SetActivatedRequest struct {
	Identity  string `json:"identity" binding:"required"`
	Activated *bool  `json:"activated" binding:"required"`
}
