package group

import (
	"go.uber.org/zap"

	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/dto/respond"
	"class_directory_server/internal/model"
	"class_directory_server/internal/service/authz"
	"class_directory_server/pkg/errorx"
)

// groupService 群组业务逻辑实现
// 通过构造函数注入 Repository 和鉴权依赖
type groupService struct {
	repos   *repository.Repositories
	checker *authz.Checker
}

// NewGroupService 构造函数，注入所有依赖
func NewGroupService(repos *repository.Repositories, checker *authz.Checker) *groupService {
	return &groupService{
		repos:   repos,
		checker: checker,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// CreateGroup 创建群组
// 成员用户名逐个解析，解析不到的跳过并计数；解析成功的成员入群并激活
func (s *groupService) CreateGroup(req request.CreateGroupRequest) (*respond.CreateGroupRespond, error) {
	// 群主引用必须解析到已存在的用户，否则按参数错误处理
	var owner *model.User
	if req.OwnerExternalId != "" {
		u, err := s.repos.User.FindByExternalId(req.OwnerExternalId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.Newf(errorx.CodeInvalidParam, "群主 %s 不存在", req.OwnerExternalId)
			}
			zap.L().Error("resolve owner error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		owner = u
	}

	// 预检查重名，提交时的唯一索引冲突同样映射为 CodeConflict
	if _, err := s.repos.Group.FindByName(req.Name); err == nil {
		return nil, errorx.Newf(errorx.CodeConflict, "群组名称 %s 已存在", req.Name)
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("check group name error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	grp := model.Group{
		Name:        req.Name,
		Description: req.Description,
	}
	if owner != nil {
		grp.OwnerId = &owner.Id
	}

	var added, skipped int
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Group.Create(&grp); err != nil {
			zap.L().Error("create group error", zap.String("name", req.Name), zap.Error(err))
			return err
		}

		for _, username := range req.MemberUsernames {
			member, err := txRepos.User.FindByUsername(username)
			if err != nil {
				if errorx.IsNotFound(err) {
					// 解析不到的用户名跳过，不影响建群
					zap.L().Warn("member username not found, skipped",
						zap.String("group", req.Name), zap.String("username", username))
					skipped++
					continue
				}
				zap.L().Error("resolve member error", zap.String("username", username), zap.Error(err))
				return errorx.ErrServerBusy
			}

			// Exists 检查兼容 member_usernames 中出现重复项
			exists, err := txRepos.Member.Exists(grp.Id, member.Id)
			if err != nil {
				zap.L().Error("check membership error", zap.Error(err))
				return errorx.ErrServerBusy
			}
			if exists {
				continue
			}

			if err := txRepos.Member.Create(&model.GroupUser{GroupId: grp.Id, UserId: member.Id}); err != nil {
				zap.L().Error("create membership error", zap.Error(err))
				return errorx.ErrServerBusy
			}
			// 建群时入群的成员随之激活
			if !member.IsActivated {
				if err := txRepos.User.UpdateActivated(member.Id, true); err != nil {
					zap.L().Error("activate member error", zap.Uint("userId", member.Id), zap.Error(err))
					return errorx.ErrServerBusy
				}
			}
			added++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rsp := &respond.CreateGroupRespond{
		Id:           grp.Id,
		Name:         grp.Name,
		Description:  grp.Description,
		AddedCount:   added,
		SkippedCount: skipped,
		CreatedAt:    grp.CreatedAt,
	}
	if owner != nil {
		rsp.Owner = &respond.GroupOwnerInfo{
			Id:         owner.Id,
			ExternalId: deref(owner.ExternalId),
			Username:   deref(owner.Username),
		}
	}
	return rsp, nil
}

// DeleteGroup 删除群组
// 级联删除成员关系，但不删除用户行；群组不存在时返回 existed=false
func (s *groupService) DeleteGroup(req request.DeleteGroupRequest) (*respond.DeleteGroupRespond, error) {
	var existed bool
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Member.DeleteByGroupId(req.GroupId); err != nil {
			zap.L().Error("cascade delete memberships error", zap.Uint("groupId", req.GroupId), zap.Error(err))
			return errorx.ErrServerBusy
		}
		ok, err := txRepos.Group.Delete(req.GroupId)
		if err != nil {
			zap.L().Error("delete group error", zap.Uint("groupId", req.GroupId), zap.Error(err))
			return errorx.ErrServerBusy
		}
		existed = ok
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &respond.DeleteGroupRespond{Existed: existed}, nil
}

// AddMember 添加群成员
// 已是成员时幂等成功；带调用者身份时先做群主鉴权，入群成员随之激活
func (s *groupService) AddMember(req request.AddMemberRequest) error {
	if _, err := s.repos.Group.FindById(req.GroupId); err != nil {
		return err
	}
	member, err := s.resolveUser(req.UserIdentity)
	if err != nil {
		return err
	}

	gated := req.CallerExternalId != ""
	if gated {
		ok, err := s.checker.IsOwner(req.GroupId, req.CallerExternalId)
		if err != nil {
			return err
		}
		if !ok {
			return errorx.Newf(errorx.CodeUnauthorized, "%s 不是群组 %d 的群主", req.CallerExternalId, req.GroupId)
		}
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		exists, err := txRepos.Member.Exists(req.GroupId, member.Id)
		if err != nil {
			zap.L().Error("check membership error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if !exists {
			if err := txRepos.Member.Create(&model.GroupUser{GroupId: req.GroupId, UserId: member.Id}); err != nil {
				zap.L().Error("create membership error", zap.Error(err))
				return errorx.ErrServerBusy
			}
		}
		// 群主加人附带激活该成员
		if gated && !member.IsActivated {
			if err := txRepos.User.UpdateActivated(member.Id, true); err != nil {
				zap.L().Error("activate member error", zap.Uint("userId", member.Id), zap.Error(err))
				return errorx.ErrServerBusy
			}
		}
		return nil
	})
}

// RemoveMember 移除群成员
// 群组、用户或成员关系不存在均按未找到处理；
// 移除后所在群组数为 0 的用户停用
func (s *groupService) RemoveMember(req request.RemoveMemberRequest) error {
	if _, err := s.repos.Group.FindById(req.GroupId); err != nil {
		return err
	}
	member, err := s.resolveUser(req.UserIdentity)
	if err != nil {
		return err
	}

	if req.CallerExternalId != "" {
		ok, err := s.checker.IsOwner(req.GroupId, req.CallerExternalId)
		if err != nil {
			return err
		}
		if !ok {
			return errorx.Newf(errorx.CodeUnauthorized, "%s 不是群组 %d 的群主", req.CallerExternalId, req.GroupId)
		}
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		deleted, err := txRepos.Member.Delete(req.GroupId, member.Id)
		if err != nil {
			zap.L().Error("delete membership error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if !deleted {
			return errorx.Newf(errorx.CodeNotFound, "用户 %s 不在群组 %d 中", req.UserIdentity, req.GroupId)
		}

		count, err := txRepos.Member.CountByUserId(member.Id)
		if err != nil {
			zap.L().Error("count memberships error", zap.Uint("userId", member.Id), zap.Error(err))
			return errorx.ErrServerBusy
		}
		// 不再属于任何群组的用户停用
		if count == 0 && member.IsActivated {
			if err := txRepos.User.UpdateActivated(member.Id, false); err != nil {
				zap.L().Error("deactivate member error", zap.Uint("userId", member.Id), zap.Error(err))
				return errorx.ErrServerBusy
			}
		}
		return nil
	})
}

// GetGroupById 按主键查询群组详情
func (s *groupService) GetGroupById(groupId uint) (*respond.GetGroupInfoRespond, error) {
	grp, err := s.repos.Group.FindById(groupId)
	if err != nil {
		return nil, err
	}
	return s.buildGroupInfo(grp)
}

// GetGroupByName 按名称查询群组详情
func (s *groupService) GetGroupByName(name string) (*respond.GetGroupInfoRespond, error) {
	grp, err := s.repos.Group.FindByName(name)
	if err != nil {
		return nil, err
	}
	return s.buildGroupInfo(grp)
}

// buildGroupInfo 组装群组详情快照，含群主信息与成员列表
func (s *groupService) buildGroupInfo(grp *model.Group) (*respond.GetGroupInfoRespond, error) {
	rsp := &respond.GetGroupInfoRespond{
		Id:          grp.Id,
		Name:        grp.Name,
		Description: grp.Description,
		CreatedAt:   grp.CreatedAt,
		UpdatedAt:   grp.UpdatedAt,
	}

	if grp.OwnerId != nil {
		owner, err := s.repos.User.FindById(*grp.OwnerId)
		if err == nil {
			rsp.Owner = &respond.GroupOwnerInfo{
				Id:         owner.Id,
				ExternalId: deref(owner.ExternalId),
				Username:   deref(owner.Username),
			}
		} else if !errorx.IsNotFound(err) {
			zap.L().Error("resolve owner error", zap.Uint("ownerId", *grp.OwnerId), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	members, err := s.repos.Member.FindUsersByGroupId(grp.Id)
	if err != nil {
		zap.L().Error("find members error", zap.Uint("groupId", grp.Id), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp.Users = make([]respond.GroupMemberItem, 0, len(members))
	for _, m := range members {
		rsp.Users = append(rsp.Users, respond.GroupMemberItem{
			Id:         m.Id,
			ExternalId: deref(m.ExternalId),
			Username:   deref(m.Username),
			FirstName:  m.FirstName,
			LastName:   m.LastName,
		})
	}
	rsp.UsersCount = len(rsp.Users)
	return rsp, nil
}

// LoadOwnedGroups 获取指定群主创建的群组列表
func (s *groupService) LoadOwnedGroups(ownerExternalId string) ([]respond.GetGroupListRespond, error) {
	owner, err := s.repos.User.FindByExternalId(ownerExternalId)
	if err != nil {
		return nil, err
	}

	groups, err := s.repos.Group.FindByOwnerId(owner.Id)
	if err != nil {
		zap.L().Error("find owned groups error", zap.Uint("ownerId", owner.Id), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.buildGroupList(groups)
}

// GetGroupList 获取所有群组及各自的成员数
func (s *groupService) GetGroupList() ([]respond.GetGroupListRespond, error) {
	groups, err := s.repos.Group.FindAll()
	if err != nil {
		zap.L().Error("find all groups error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.buildGroupList(groups)
}

// buildGroupList 组装扫描用的群组列表，只带成员数不展开成员
func (s *groupService) buildGroupList(groups []model.Group) ([]respond.GetGroupListRespond, error) {
	rsp := make([]respond.GetGroupListRespond, 0, len(groups))
	for _, g := range groups {
		count, err := s.repos.Member.CountByGroupId(g.Id)
		if err != nil {
			zap.L().Error("count members error", zap.Uint("groupId", g.Id), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		item := respond.GetGroupListRespond{
			Id:          g.Id,
			Name:        g.Name,
			Description: g.Description,
			UsersCount:  count,
			CreatedAt:   g.CreatedAt,
		}
		if g.OwnerId != nil {
			item.OwnerId = *g.OwnerId
		}
		rsp = append(rsp, item)
	}
	return rsp, nil
}

// resolveUser 按 external_id 优先、username 兜底解析用户
func (s *groupService) resolveUser(identity string) (*model.User, error) {
	u, err := s.repos.User.FindByExternalId(identity)
	if err == nil {
		return u, nil
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}
	return s.repos.User.FindByUsername(identity)
}
