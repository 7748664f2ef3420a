package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"class_directory_server/internal/config"
	"class_directory_server/pkg/constants"
	"class_directory_server/pkg/errorx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client 智能体客户端
// 负责用户名生成与学生答疑两类请求
type Client interface {
	// GenerateUsername 请求智能体生成一个候选用户名
	// 唯一性由调用方校验，冲突时重新调用
	GenerateUsername(ctx context.Context) (string, error)
	// AskTutor 代理学生的答疑请求，返回智能体的回答
	AskTutor(ctx context.Context, identity string, question string) (string, error)
}

type httpClient struct {
	endpoint string
	client   *http.Client
}

// NewClient 创建智能体 HTTP 客户端
func NewClient(conf *config.AgentConfig) Client {
	// 配置中的超时按秒计
	timeout := conf.Timeout * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &httpClient{
		endpoint: conf.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type usernameRespond struct {
	Username string `json:"username"`
}

func (c *httpClient) GenerateUsername(ctx context.Context) (string, error) {
	url := c.endpoint + "/username"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeUpstream, "build username request failed")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("agent username request failed", zap.Error(err))
		return "", errorx.Wrap(err, errorx.CodeUpstream, "agent unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errorx.Newf(errorx.CodeUpstream, "agent returned status %d", resp.StatusCode)
	}

	var rsp usernameRespond
	if err := json.NewDecoder(resp.Body).Decode(&rsp); err != nil {
		return "", errorx.Wrap(err, errorx.CodeUpstream, "decode username respond failed")
	}
	username := strings.TrimSpace(rsp.Username)
	if username == "" {
		return "", errorx.New(errorx.CodeUpstream, "agent returned empty username")
	}
	return username, nil
}

type tutorRequest struct {
	Identity string `json:"identity"`
	Question string `json:"question"`
}

type tutorRespond struct {
	Answer string `json:"answer"`
}

func (c *httpClient) AskTutor(ctx context.Context, identity string, question string) (string, error) {
	body, err := json.Marshal(tutorRequest{Identity: identity, Question: question})
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeUpstream, "marshal tutor request failed")
	}

	url := c.endpoint + "/tutor"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeUpstream, "build tutor request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("agent tutor request failed", zap.String("identity", identity), zap.Error(err))
		return "", errorx.Wrap(err, errorx.CodeUpstream, "agent unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, constants.UPSTREAM_BODY_LIMIT))
		zap.L().Error("agent rejected tutor request",
			zap.String("identity", identity),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return "", errorx.Newf(errorx.CodeUpstream, "agent returned status %d", resp.StatusCode)
	}

	var rsp tutorRespond
	if err := json.NewDecoder(resp.Body).Decode(&rsp); err != nil {
		return "", errorx.Wrap(err, errorx.CodeUpstream, "decode tutor respond failed")
	}
	return rsp.Answer, nil
}
