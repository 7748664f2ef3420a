package group

import (
	"testing"

	"class_directory_server/internal/config"
	"class_directory_server/internal/dao/storage"
	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/model"
	"class_directory_server/internal/service/authz"
	"class_directory_server/pkg/errorx"
)

// newTestService 基于内存 sqlite 构造测试用群组服务
func newTestService(t *testing.T) (*groupService, *repository.Repositories) {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Driver: "sqlite-memory"})
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	repos := store.Repositories()
	return NewGroupService(repos, authz.NewChecker(repos)), repos
}

// seedUser 直接写库造用户
func seedUser(t *testing.T, repos *repository.Repositories, externalId, username string, activated bool) *model.User {
	t.Helper()
	u := &model.User{IsActivated: activated}
	if externalId != "" {
		u.ExternalId = &externalId
	}
	if username != "" {
		u.Username = &username
	}
	if err := repos.User.Create(u); err != nil {
		t.Fatalf("seed user %s/%s: %v", externalId, username, err)
	}
	return u
}

func TestCreateGroup_NameConflict(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1"})
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("expected CodeConflict, got %v", err)
	}
}

func TestCreateGroup_UnknownOwnerIsValidationError(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1", OwnerExternalId: "ghost"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("expected CodeInvalidParam, got %v", err)
	}
}

func TestCreateGroup_ResolvesAndSkipsMembers(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "", "alice", false)

	// alice 可解析，bob 不存在被跳过
	rsp, err := svc.CreateGroup(request.CreateGroupRequest{
		Name:            "G1",
		MemberUsernames: []string{"alice", "bob"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rsp.AddedCount != 1 || rsp.SkippedCount != 1 {
		t.Fatalf("expected added=1 skipped=1, got added=%d skipped=%d", rsp.AddedCount, rsp.SkippedCount)
	}

	info, err := svc.GetGroupById(rsp.Id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(info.Users) != 1 || info.Users[0].Username != "alice" {
		t.Fatalf("expected members [alice], got %+v", info.Users)
	}

	// 建群时入群的成员随之激活
	alice, err := repos.User.FindByUsername("alice")
	if err != nil {
		t.Fatalf("find alice: %v", err)
	}
	if !alice.IsActivated {
		t.Fatal("alice should be activated after joining at creation")
	}
}

func TestAddMember_IdempotentAndBidirectional(t *testing.T) {
	svc, repos := newTestService(t)
	u := seedUser(t, repos, "", "alice", false)

	rsp, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if err := svc.AddMember(request.AddMemberRequest{GroupId: rsp.Id, UserIdentity: "alice"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	// 重复加入幂等成功
	if err := svc.AddMember(request.AddMemberRequest{GroupId: rsp.Id, UserIdentity: "alice"}); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	count, err := repos.Member.CountByGroupId(rsp.Id)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 membership row, got %d", count)
	}

	// 两个方向都能看到这条关系
	groups, err := repos.Member.FindGroupsByUserId(u.Id)
	if err != nil {
		t.Fatalf("groups of user: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "G1" {
		t.Fatalf("expected [G1], got %+v", groups)
	}
	users, err := repos.Member.FindUsersByGroupId(rsp.Id)
	if err != nil {
		t.Fatalf("users of group: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 member, got %d", len(users))
	}
}

func TestAddMember_MissingGroupOrUser(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "", "alice", false)

	err := svc.AddMember(request.AddMemberRequest{GroupId: 999, UserIdentity: "alice"})
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found for missing group, got %v", err)
	}

	rsp, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	err = svc.AddMember(request.AddMemberRequest{GroupId: rsp.Id, UserIdentity: "ghost"})
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found for missing user, got %v", err)
	}
}

func TestAddMember_OwnerGatedActivates(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "teacher-1", "", true)
	seedUser(t, repos, "", "alice", false)

	rsp, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1", OwnerExternalId: "teacher-1"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	// 非群主调用被拒绝，且与未找到错误可区分
	seedUser(t, repos, "intruder", "", true)
	err = svc.AddMember(request.AddMemberRequest{
		GroupId: rsp.Id, UserIdentity: "alice", CallerExternalId: "intruder",
	})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("expected CodeUnauthorized, got %v", err)
	}

	// 群主加人成功并激活成员
	err = svc.AddMember(request.AddMemberRequest{
		GroupId: rsp.Id, UserIdentity: "alice", CallerExternalId: "teacher-1",
	})
	if err != nil {
		t.Fatalf("owner add: %v", err)
	}
	alice, err := repos.User.FindByUsername("alice")
	if err != nil {
		t.Fatalf("find alice: %v", err)
	}
	if !alice.IsActivated {
		t.Fatal("alice should be activated by owner-gated add")
	}
}

func TestRemoveMember_DeactivatesAtZeroMemberships(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "teacher-1", "", true)
	seedUser(t, repos, "", "alice", false)

	g1, err := svc.CreateGroup(request.CreateGroupRequest{
		Name: "G1", OwnerExternalId: "teacher-1", MemberUsernames: []string{"alice"},
	})
	if err != nil {
		t.Fatalf("create G1: %v", err)
	}
	g2, err := svc.CreateGroup(request.CreateGroupRequest{
		Name: "G2", OwnerExternalId: "teacher-1", MemberUsernames: []string{"alice"},
	})
	if err != nil {
		t.Fatalf("create G2: %v", err)
	}

	// 还剩一个群，保持激活
	err = svc.RemoveMember(request.RemoveMemberRequest{
		GroupId: g1.Id, UserIdentity: "alice", CallerExternalId: "teacher-1",
	})
	if err != nil {
		t.Fatalf("remove from G1: %v", err)
	}
	alice, _ := repos.User.FindByUsername("alice")
	if !alice.IsActivated {
		t.Fatal("alice should stay activated while still in G2")
	}

	// 群组数降为 0，停用
	err = svc.RemoveMember(request.RemoveMemberRequest{
		GroupId: g2.Id, UserIdentity: "alice", CallerExternalId: "teacher-1",
	})
	if err != nil {
		t.Fatalf("remove from G2: %v", err)
	}
	alice, _ = repos.User.FindByUsername("alice")
	if alice.IsActivated {
		t.Fatal("alice should be deactivated at zero memberships")
	}

	// 关系已不存在，再删按未找到处理
	err = svc.RemoveMember(request.RemoveMemberRequest{
		GroupId: g2.Id, UserIdentity: "alice", CallerExternalId: "teacher-1",
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found for missing edge, got %v", err)
	}
}

func TestRemoveMember_NonOwnerRejected(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "teacher-1", "", true)
	seedUser(t, repos, "other", "", true)
	seedUser(t, repos, "", "alice", false)

	g, err := svc.CreateGroup(request.CreateGroupRequest{
		Name: "G1", OwnerExternalId: "teacher-1", MemberUsernames: []string{"alice"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.RemoveMember(request.RemoveMemberRequest{
		GroupId: g.Id, UserIdentity: "alice", CallerExternalId: "other",
	})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("expected CodeUnauthorized, got %v", err)
	}
}

func TestDeleteGroup_CascadesButKeepsUsers(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "", "alice", false)

	g, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1", MemberUsernames: []string{"alice"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rsp, err := svc.DeleteGroup(request.DeleteGroupRequest{GroupId: g.Id})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !rsp.Existed {
		t.Fatal("expected existed=true")
	}

	// 关联记录清空，用户行保留
	count, err := repos.Member.CountByGroupId(g.Id)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 membership rows, got %d", count)
	}
	if _, err := repos.User.FindByUsername("alice"); err != nil {
		t.Fatalf("alice should survive group deletion: %v", err)
	}

	// 删除不存在的群组：否定结果而非错误
	rsp, err = svc.DeleteGroup(request.DeleteGroupRequest{GroupId: g.Id})
	if err != nil {
		t.Fatalf("re-delete: %v", err)
	}
	if rsp.Existed {
		t.Fatal("expected existed=false for missing group")
	}
}

func TestGetGroupByName_And_Lists(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "teacher-1", "", true)
	seedUser(t, repos, "", "alice", false)

	if _, err := svc.CreateGroup(request.CreateGroupRequest{
		Name: "G1", OwnerExternalId: "teacher-1", MemberUsernames: []string{"alice"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	info, err := svc.GetGroupByName("G1")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if info.Owner == nil || info.Owner.ExternalId != "teacher-1" {
		t.Fatalf("expected owner teacher-1, got %+v", info.Owner)
	}
	if info.UsersCount != 1 {
		t.Fatalf("expected users_count=1, got %d", info.UsersCount)
	}

	_, err = svc.GetGroupByName("nope")
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	owned, err := svc.LoadOwnedGroups("teacher-1")
	if err != nil {
		t.Fatalf("load owned: %v", err)
	}
	if len(owned) != 1 || owned[0].UsersCount != 1 {
		t.Fatalf("expected 1 owned group with 1 member, got %+v", owned)
	}

	all, err := svc.GetGroupList()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 group, got %d", len(all))
	}
}

func TestIsOwner_Predicate(t *testing.T) {
	svc, repos := newTestService(t)
	checker := authz.NewChecker(repos)
	seedUser(t, repos, "teacher-1", "", true)

	g, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G1", OwnerExternalId: "teacher-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := checker.IsOwner(g.Id, "teacher-1")
	if err != nil || !ok {
		t.Fatalf("expected owner match, got ok=%v err=%v", ok, err)
	}
	ok, err = checker.IsOwner(g.Id, "someone-else")
	if err != nil || ok {
		t.Fatalf("expected owner mismatch, got ok=%v err=%v", ok, err)
	}

	// 无主群组没有群主
	noOwner, err := svc.CreateGroup(request.CreateGroupRequest{Name: "G2"})
	if err != nil {
		t.Fatalf("create ownerless: %v", err)
	}
	ok, err = checker.IsOwner(noOwner.Id, "teacher-1")
	if err != nil || ok {
		t.Fatalf("expected false for ownerless group, got ok=%v err=%v", ok, err)
	}

	// 群组不存在：未找到错误，由调用方呈现
	_, err = checker.IsOwner(999, "teacher-1")
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
