package respond

// DeleteGroupRespond 删除群组响应
// existed=false 表示群组本就不存在（删除是幂等的否定结果）
type DeleteGroupRespond struct {
	Existed bool `json:"existed"`
}
