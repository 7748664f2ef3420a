package request

// DeleteGroupRequest 删除群组请求
type DeleteGroupRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
}
