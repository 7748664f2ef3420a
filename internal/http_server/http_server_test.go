package http_server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"class_directory_server/internal/dto/request"
	"class_directory_server/internal/dto/respond"
	"class_directory_server/internal/handler"
	"class_directory_server/internal/http_server"
	"class_directory_server/internal/service"

	"github.com/gin-gonic/gin"
)

type stubUserService struct{}

type stubGroupService struct{}

type stubAccountService struct{}

func (s stubUserService) CreateUser(req request.CreateUserRequest) (*respond.CreateUserRespond, error) {
	return &respond.CreateUserRespond{Id: 1, Username: req.Username}, nil
}
func (s stubUserService) GetUserByExternalId(externalId string) (*respond.GetUserInfoRespond, error) {
	return &respond.GetUserInfoRespond{Groups: []respond.UserGroupItem{}}, nil
}
func (s stubUserService) GetUserByUsername(username string) (*respond.GetUserInfoRespond, error) {
	return &respond.GetUserInfoRespond{Groups: []respond.UserGroupItem{}}, nil
}
func (s stubUserService) GetUserList() ([]respond.GetUserListRespond, error) {
	return []respond.GetUserListRespond{}, nil
}
func (s stubUserService) SetActivated(req request.SetActivatedRequest) (*respond.SetActivatedRespond, error) {
	return &respond.SetActivatedRespond{Changed: true, IsActivated: *req.Activated}, nil
}
func (s stubUserService) BindExternalId(req request.BindExternalIdRequest) (*respond.CreateUserRespond, error) {
	return &respond.CreateUserRespond{Id: 1, ExternalId: req.ExternalId}, nil
}

func (s stubGroupService) CreateGroup(req request.CreateGroupRequest) (*respond.CreateGroupRespond, error) {
	return &respond.CreateGroupRespond{Id: 1, Name: req.Name}, nil
}
func (s stubGroupService) DeleteGroup(req request.DeleteGroupRequest) (*respond.DeleteGroupRespond, error) {
	return &respond.DeleteGroupRespond{Existed: true}, nil
}
func (s stubGroupService) AddMember(req request.AddMemberRequest) error       { return nil }
func (s stubGroupService) RemoveMember(req request.RemoveMemberRequest) error { return nil }
func (s stubGroupService) GetGroupById(groupId uint) (*respond.GetGroupInfoRespond, error) {
	return &respond.GetGroupInfoRespond{Id: groupId, Users: []respond.GroupMemberItem{}}, nil
}
func (s stubGroupService) GetGroupByName(name string) (*respond.GetGroupInfoRespond, error) {
	return &respond.GetGroupInfoRespond{Name: name, Users: []respond.GroupMemberItem{}}, nil
}
func (s stubGroupService) LoadOwnedGroups(ownerExternalId string) ([]respond.GetGroupListRespond, error) {
	return []respond.GetGroupListRespond{}, nil
}
func (s stubGroupService) GetGroupList() ([]respond.GetGroupListRespond, error) {
	return []respond.GetGroupListRespond{}, nil
}

func (s stubAccountService) CreateTeacherAccount(ctx context.Context, req request.CreateTeacherRequest) (*respond.CreateAccountRespond, error) {
	return &respond.CreateAccountRespond{Id: 1, ExternalId: req.ExternalId, Role: "teacher"}, nil
}
func (s stubAccountService) CreateStudentAccount(ctx context.Context, req request.CreateStudentRequest) (*respond.CreateAccountRespond, error) {
	return &respond.CreateAccountRespond{Id: 2, Username: "fresh", Role: "student"}, nil
}
func (s stubAccountService) GetDirectory(ctx context.Context) ([]respond.DirectoryEntryRespond, error) {
	return []respond.DirectoryEntryRespond{}, nil
}
func (s stubAccountService) AskTutor(ctx context.Context, req request.AskTutorRequest) (*respond.AskTutorRespond, error) {
	return &respond.AskTutorRespond{Answer: "ok"}, nil
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func requireNot5xxOr404(t *testing.T, path string, resp *http.Response) {
	t.Helper()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		t.Fatalf("%s status=%d", path, resp.StatusCode)
	}
}

func TestAllHTTPEndpoints_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatalf("init trans: %v", err)
	}

	svcs := &service.Services{
		User:    stubUserService{},
		Group:   stubGroupService{},
		Account: stubAccountService{},
	}

	engine := http_server.Init(handler.NewHandlers(svcs))
	server := httptest.NewServer(engine)
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	// ===== 存活探针 =====
	resp := doReq(t, client, http.MethodGet, server.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/health status=%d", resp.StatusCode)
	}
	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	_ = resp.Body.Close()
	if health["status"] != "healthy" {
		t.Fatalf("unexpected health payload: %+v", health)
	}

	// ===== 用户接口 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/user/createUser", mustJSON(t, map[string]any{
		"username": "alice",
	}))
	requireNot5xxOr404(t, "/user/createUser", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/user/getUserByExternalId?externalId=ext-1", nil)
	requireNot5xxOr404(t, "/user/getUserByExternalId", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/user/getUserByUsername?username=alice", nil)
	requireNot5xxOr404(t, "/user/getUserByUsername", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/user/getUserList", nil)
	requireNot5xxOr404(t, "/user/getUserList", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/user/setActivated", mustJSON(t, map[string]any{
		"identity":  "alice",
		"activated": true,
	}))
	requireNot5xxOr404(t, "/user/setActivated", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/user/bindExternalId", mustJSON(t, map[string]any{
		"username":    "alice",
		"external_id": "ext-1",
	}))
	requireNot5xxOr404(t, "/user/bindExternalId", resp)
	_ = resp.Body.Close()

	// ===== 群组接口 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/group/createGroup", mustJSON(t, map[string]any{
		"name":              "G1",
		"owner_external_id": "ext-1",
		"member_usernames":  []string{"alice"},
	}))
	requireNot5xxOr404(t, "/group/createGroup", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/group/deleteGroup", mustJSON(t, map[string]any{
		"group_id": 1,
	}))
	requireNot5xxOr404(t, "/group/deleteGroup", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/group/addMember", mustJSON(t, map[string]any{
		"group_id":           1,
		"user_identity":      "alice",
		"caller_external_id": "ext-1",
	}))
	requireNot5xxOr404(t, "/group/addMember", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/group/removeMember", mustJSON(t, map[string]any{
		"group_id":      1,
		"user_identity": "alice",
	}))
	requireNot5xxOr404(t, "/group/removeMember", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getGroupInfo?groupId=1", nil)
	requireNot5xxOr404(t, "/group/getGroupInfo", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getGroupByName?name=G1", nil)
	requireNot5xxOr404(t, "/group/getGroupByName", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/loadMyGroup?ownerExternalId=ext-1", nil)
	requireNot5xxOr404(t, "/group/loadMyGroup", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getGroupList", nil)
	requireNot5xxOr404(t, "/group/getGroupList", resp)
	_ = resp.Body.Close()

	// ===== 账号流程接口 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/account/createTeacher", mustJSON(t, map[string]any{
		"external_id": "ext-1",
	}))
	requireNot5xxOr404(t, "/account/createTeacher", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/account/createStudent", mustJSON(t, map[string]any{
		"first_name": "Min",
	}))
	requireNot5xxOr404(t, "/account/createStudent", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/account/directory", nil)
	requireNot5xxOr404(t, "/account/directory", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/account/askTutor", mustJSON(t, map[string]any{
		"identity": "stu",
		"question": "什么是质数",
	}))
	requireNot5xxOr404(t, "/account/askTutor", resp)
	_ = resp.Body.Close()

	// ===== 参数校验 =====
	// 缺少必填字段走 validator 翻译分支
	resp = doReq(t, client, http.MethodPost, server.URL+"/user/setActivated", mustJSON(t, map[string]any{}))
	requireNot5xxOr404(t, "/user/setActivated (invalid)", resp)
	var body struct {
		Code int `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode invalid respond: %v", err)
	}
	_ = resp.Body.Close()
	if body.Code == 1000 {
		t.Fatal("expected non-success code for invalid params")
	}
}
