package request

// CreateStudentRequest 创建学生账号请求
// 用户名由智能体服务生成，本地最多重试 3 次解决重名
type CreateStudentRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
