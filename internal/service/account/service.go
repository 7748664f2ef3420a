package account

import (
	"context"

	"go.uber.org/zap"

	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/dto/respond"
	"class_directory_server/internal/infrastructure/agent"
	"class_directory_server/internal/infrastructure/registry"
	"class_directory_server/internal/model"
	"class_directory_server/pkg/constants"
	"class_directory_server/pkg/errorx"
)

// 注册中心登记的角色名
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// accountService 账号业务逻辑实现
// 组合本地存储与注册中心、智能体两个上游客户端
type accountService struct {
	repos    *repository.Repositories
	registry registry.Client
	agent    agent.Client
}

// NewAccountService 构造函数，注入所有依赖
func NewAccountService(repos *repository.Repositories, registryClient registry.Client, agentClient agent.Client) *accountService {
	return &accountService{
		repos:    repos,
		registry: registryClient,
		agent:    agentClient,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// CreateTeacherAccount 创建教师账号
// 本地建号与注册中心登记放在同一事务内，登记失败时本地写入随事务回滚，
// 不会留下未登记的账号
func (s *accountService) CreateTeacherAccount(ctx context.Context, req request.CreateTeacherRequest) (*respond.CreateAccountRespond, error) {
	if _, err := s.repos.User.FindByExternalId(req.ExternalId); err == nil {
		return nil, errorx.Newf(errorx.CodeConflict, "external_id %s 已存在", req.ExternalId)
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("check external_id error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	externalId := req.ExternalId
	u := model.User{
		ExternalId:  &externalId,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActivated: true, // 教师账号开通即激活
	}

	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.User.Create(&u); err != nil {
			zap.L().Error("create teacher error", zap.String("externalId", req.ExternalId), zap.Error(err))
			return err
		}
		if err := s.registry.RegisterIdentity(ctx, externalId, RoleTeacher); err != nil {
			zap.L().Error("register teacher identity error", zap.String("externalId", req.ExternalId), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &respond.CreateAccountRespond{
		Id:         u.Id,
		ExternalId: externalId,
		Role:       RoleTeacher,
		CreatedAt:  u.CreatedAt,
	}, nil
}

// CreateStudentAccount 创建学生账号
// 用户名由智能体生成，与现有用户名冲突时重新生成，最多尝试
// USERNAME_GEN_MAX_ATTEMPTS 次，全部冲突按上游失败处理
func (s *accountService) CreateStudentAccount(ctx context.Context, req request.CreateStudentRequest) (*respond.CreateAccountRespond, error) {
	var username string
	for attempt := 0; attempt < constants.USERNAME_GEN_MAX_ATTEMPTS; attempt++ {
		candidate, err := s.agent.GenerateUsername(ctx)
		if err != nil {
			return nil, err
		}

		_, err = s.repos.User.FindByUsername(candidate)
		if errorx.IsNotFound(err) {
			username = candidate
			break
		}
		if err != nil {
			zap.L().Error("check username error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		zap.L().Warn("generated username collided, retrying",
			zap.String("username", candidate), zap.Int("attempt", attempt+1))
	}
	if username == "" {
		return nil, errorx.Newf(errorx.CodeUpstream,
			"用户名生成 %d 次均与现有用户名冲突", constants.USERNAME_GEN_MAX_ATTEMPTS)
	}

	u := model.User{
		Username:  &username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.User.Create(&u); err != nil {
			zap.L().Error("create student error", zap.String("username", username), zap.Error(err))
			return err
		}
		// 学生尚未绑定平台身份，以用户名作为登记身份
		if err := s.registry.RegisterIdentity(ctx, username, RoleStudent); err != nil {
			zap.L().Error("register student identity error", zap.String("username", username), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &respond.CreateAccountRespond{
		Id:        u.Id,
		Username:  username,
		Role:      RoleStudent,
		CreatedAt: u.CreatedAt,
	}, nil
}

// GetDirectory 获取目录
// 本地用户列表与注册中心身份角色按 external_id 或 username 合并
func (s *accountService) GetDirectory(ctx context.Context) ([]respond.DirectoryEntryRespond, error) {
	identities, err := s.registry.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}
	roleByIdentity := make(map[string]string, len(identities))
	for _, ir := range identities {
		roleByIdentity[ir.Identity] = ir.Role
	}

	users, err := s.repos.User.FindAll()
	if err != nil {
		zap.L().Error("find all users error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	entries := make([]respond.DirectoryEntryRespond, 0, len(users))
	for _, u := range users {
		count, err := s.repos.Member.CountByUserId(u.Id)
		if err != nil {
			zap.L().Error("count groups of user error", zap.Uint("userId", u.Id), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}

		role := ""
		if r, ok := roleByIdentity[deref(u.ExternalId)]; ok {
			role = r
		} else if r, ok := roleByIdentity[deref(u.Username)]; ok {
			role = r
		}

		entries = append(entries, respond.DirectoryEntryRespond{
			Id:          u.Id,
			ExternalId:  deref(u.ExternalId),
			Username:    deref(u.Username),
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			IsActivated: u.IsActivated,
			Role:        role,
			GroupsCount: count,
		})
	}
	return entries, nil
}

// AskTutor 代理学生的答疑请求
// 提问者必须是已存在的用户，问答协议由智能体服务定义
func (s *accountService) AskTutor(ctx context.Context, req request.AskTutorRequest) (*respond.AskTutorRespond, error) {
	if _, err := s.resolveByIdentity(req.Identity); err != nil {
		return nil, err
	}

	answer, err := s.agent.AskTutor(ctx, req.Identity, req.Question)
	if err != nil {
		return nil, err
	}
	return &respond.AskTutorRespond{Answer: answer}, nil
}

// resolveByIdentity 按 external_id 优先、username 兜底解析用户
func (s *accountService) resolveByIdentity(identity string) (*model.User, error) {
	u, err := s.repos.User.FindByExternalId(identity)
	if err == nil {
		return u, nil
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}
	return s.repos.User.FindByUsername(identity)
}
