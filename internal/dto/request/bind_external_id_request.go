package request

// BindExternalIdRequest 为仅有用户名的账号绑定平台身份请求
// 用于学生账号完成平台侧验证之后补绑 external_id
type BindExternalIdRequest struct {
	Username   string `json:"username" binding:"required"`
	ExternalId string `json:"external_id" binding:"required"`
}
