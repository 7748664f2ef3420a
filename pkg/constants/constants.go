package constants

const (
	USERNAME_GEN_MAX_ATTEMPTS = 3    // 用户名生成重名时的最大尝试次数
	UPSTREAM_BODY_LIMIT       = 1024 // 记录上游错误响应体的最大字节数
)
