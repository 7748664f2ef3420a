package user

import (
	"go.uber.org/zap"

	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/dto/respond"
	"class_directory_server/internal/model"
	"class_directory_server/pkg/errorx"
)

// userService 用户业务逻辑实现
// 通过构造函数注入 Repository 依赖
type userService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数，注入所有依赖
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// strPtr 空字符串转 nil，非空转指针
// 可空唯一列存 NULL 才不会在唯一索引上互相冲突
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// CreateUser 创建用户
// external_id 和 username 至少填一个，重复身份返回冲突错误
func (s *userService) CreateUser(req request.CreateUserRequest) (*respond.CreateUserRespond, error) {
	u := model.User{
		ExternalId:  strPtr(req.ExternalId),
		Username:    strPtr(req.Username),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActivated: req.IsActivated,
	}
	if !u.HasIdentity() {
		return nil, errorx.New(errorx.CodeInvalidParam, "external_id 和 username 不能同时为空")
	}

	// 预检查重复身份，并发竞态下提交时的唯一索引冲突同样映射为 CodeConflict
	if req.ExternalId != "" {
		if _, err := s.repos.User.FindByExternalId(req.ExternalId); err == nil {
			return nil, errorx.Newf(errorx.CodeConflict, "external_id %s 已存在", req.ExternalId)
		} else if !errorx.IsNotFound(err) {
			zap.L().Error("check external_id error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}
	if req.Username != "" {
		if _, err := s.repos.User.FindByUsername(req.Username); err == nil {
			return nil, errorx.Newf(errorx.CodeConflict, "username %s 已存在", req.Username)
		} else if !errorx.IsNotFound(err) {
			zap.L().Error("check username error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	if err := s.repos.User.Create(&u); err != nil {
		zap.L().Error("create user error", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	return &respond.CreateUserRespond{
		Id:          u.Id,
		ExternalId:  deref(u.ExternalId),
		Username:    deref(u.Username),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActivated: u.IsActivated,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}, nil
}

// GetUserByExternalId 按平台身份标识查询用户
func (s *userService) GetUserByExternalId(externalId string) (*respond.GetUserInfoRespond, error) {
	u, err := s.repos.User.FindByExternalId(externalId)
	if err != nil {
		return nil, err
	}
	return s.buildUserInfo(u)
}

// GetUserByUsername 按用户名查询用户
func (s *userService) GetUserByUsername(username string) (*respond.GetUserInfoRespond, error) {
	u, err := s.repos.User.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.buildUserInfo(u)
}

// buildUserInfo 组装用户详情，附带解析后的所在群组列表
func (s *userService) buildUserInfo(u *model.User) (*respond.GetUserInfoRespond, error) {
	groups, err := s.repos.Member.FindGroupsByUserId(u.Id)
	if err != nil {
		zap.L().Error("find groups of user error", zap.Uint("userId", u.Id), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 使用 make 初始化 len=0，确保序列化后是 [] 而不是 null
	groupItems := make([]respond.UserGroupItem, 0, len(groups))
	for _, g := range groups {
		groupItems = append(groupItems, respond.UserGroupItem{
			Id:          g.Id,
			Name:        g.Name,
			Description: g.Description,
		})
	}

	return &respond.GetUserInfoRespond{
		Id:          u.Id,
		ExternalId:  deref(u.ExternalId),
		Username:    deref(u.Username),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActivated: u.IsActivated,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Groups:      groupItems,
		GroupsCount: len(groupItems),
	}, nil
}

// GetUserList 获取所有用户及各自的群组数
func (s *userService) GetUserList() ([]respond.GetUserListRespond, error) {
	users, err := s.repos.User.FindAll()
	if err != nil {
		zap.L().Error("find all users error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.GetUserListRespond, 0, len(users))
	for _, u := range users {
		count, err := s.repos.Member.CountByUserId(u.Id)
		if err != nil {
			zap.L().Error("count groups of user error", zap.Uint("userId", u.Id), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		rsp = append(rsp, respond.GetUserListRespond{
			Id:          u.Id,
			ExternalId:  deref(u.ExternalId),
			Username:    deref(u.Username),
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			IsActivated: u.IsActivated,
			CreatedAt:   u.CreatedAt,
			GroupsCount: count,
		})
	}
	return rsp, nil
}

// SetActivated 设置激活状态
// 已处于目标状态时不写库，返回 changed=false
func (s *userService) SetActivated(req request.SetActivatedRequest) (*respond.SetActivatedRespond, error) {
	u, err := s.resolveByIdentity(req.Identity)
	if err != nil {
		return nil, err
	}

	target := *req.Activated
	if u.IsActivated == target {
		return &respond.SetActivatedRespond{Changed: false, IsActivated: target}, nil
	}

	if err := s.repos.User.UpdateActivated(u.Id, target); err != nil {
		zap.L().Error("update activated error", zap.Uint("userId", u.Id), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.SetActivatedRespond{Changed: true, IsActivated: target}, nil
}

// BindExternalId 为仅有用户名的账号补绑平台身份
// 目标 external_id 已被占用时返回冲突错误
func (s *userService) BindExternalId(req request.BindExternalIdRequest) (*respond.CreateUserRespond, error) {
	u, err := s.repos.User.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if _, err := s.repos.User.FindByExternalId(req.ExternalId); err == nil {
		return nil, errorx.Newf(errorx.CodeConflict, "external_id %s 已存在", req.ExternalId)
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("check external_id error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	u.ExternalId = &req.ExternalId
	if err := s.repos.User.Update(u); err != nil {
		zap.L().Error("bind external_id error", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	return &respond.CreateUserRespond{
		Id:          u.Id,
		ExternalId:  deref(u.ExternalId),
		Username:    deref(u.Username),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActivated: u.IsActivated,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}, nil
}

// resolveByIdentity 按 external_id 优先、username 兜底解析用户
func (s *userService) resolveByIdentity(identity string) (*model.User, error) {
	u, err := s.repos.User.FindByExternalId(identity)
	if err == nil {
		return u, nil
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}
	return s.repos.User.FindByUsername(identity)
}
