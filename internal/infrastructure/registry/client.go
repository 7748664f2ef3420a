package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"class_directory_server/internal/config"
	"class_directory_server/pkg/constants"
	"class_directory_server/pkg/errorx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentityRole 注册中心登记的一条身份记录
type IdentityRole struct {
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

// Client 注册中心客户端
// 登记失败时调用方必须回滚本地写入，保证两边数据一致
type Client interface {
	// RegisterIdentity 向注册中心登记身份与角色
	RegisterIdentity(ctx context.Context, identity string, role string) error
	// ListIdentities 拉取注册中心的全部身份记录
	ListIdentities(ctx context.Context) ([]IdentityRole, error)
}

type httpClient struct {
	endpoint string
	client   *http.Client
}

// NewClient 创建注册中心 HTTP 客户端
func NewClient(conf *config.RegistryConfig) Client {
	// 配置中的超时按秒计
	timeout := conf.Timeout * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		endpoint: conf.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type registerRequest struct {
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

func (c *httpClient) RegisterIdentity(ctx context.Context, identity string, role string) error {
	body, err := json.Marshal(registerRequest{Identity: identity, Role: role})
	if err != nil {
		return errorx.Wrap(err, errorx.CodeUpstream, "marshal register request failed")
	}

	url := c.endpoint + "/register"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errorx.Wrap(err, errorx.CodeUpstream, "build register request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("registry register request failed", zap.String("identity", identity), zap.Error(err))
		return errorx.Wrap(err, errorx.CodeUpstream, "registry unreachable")
	}
	defer resp.Body.Close()

	// 非 2xx 一律视为登记失败，由调用方回滚本地事务
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, constants.UPSTREAM_BODY_LIMIT))
		zap.L().Error("registry rejected identity",
			zap.String("identity", identity),
			zap.String("role", role),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return errorx.Newf(errorx.CodeUpstream, "registry returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *httpClient) ListIdentities(ctx context.Context) ([]IdentityRole, error) {
	url := c.endpoint + "/identities"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUpstream, "build list request failed")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("registry list request failed", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeUpstream, "registry unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorx.Newf(errorx.CodeUpstream, "registry returned status %d", resp.StatusCode)
	}

	var identities []IdentityRole
	if err := json.NewDecoder(resp.Body).Decode(&identities); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUpstream, fmt.Sprintf("decode identities from %s failed", url))
	}
	return identities, nil
}
