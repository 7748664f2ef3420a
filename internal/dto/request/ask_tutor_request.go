package request

// AskTutorRequest 答疑请求
// 核心只做转发，问答协议由智能体服务定义
type AskTutorRequest struct {
	Identity string `json:"identity" binding:"required"`
	Question string `json:"question" binding:"required"`
}
