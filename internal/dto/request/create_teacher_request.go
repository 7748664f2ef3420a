package request

// CreateTeacherRequest 创建教师账号请求
// 本地建号后向注册中心登记 teacher 角色，登记失败则整体回滚
type CreateTeacherRequest struct {
	ExternalId string `json:"external_id" binding:"required"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}
