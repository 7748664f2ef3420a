package respond

// SetActivatedRespond 设置激活状态响应
// changed=false 表示本就处于目标状态（幂等，不视为失败）
type SetActivatedRespond struct {
	Changed     bool `json:"changed"`
	IsActivated bool `json:"is_activated"`
}
