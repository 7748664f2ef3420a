package request

// CreateUserRequest 创建用户请求
// external_id 与 username 至少填一个，由 Service 层校验
// 使用位置:
//   - internal/handler/user_handler.go: CreateUser
//   - internal/service/user/service.go: CreateUser
type CreateUserRequest struct {
	ExternalId  string `json:"external_id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsActivated bool   `json:"is_activated"`
}
