package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"class_directory_server/internal/config"
	"class_directory_server/pkg/errorx"
)

func TestRegisterIdentity_SendsIdentityAndRole(t *testing.T) {
	var got registerRequest
	var gotRequestId string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotRequestId = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(&config.RegistryConfig{Endpoint: srv.URL})
	if err := client.RegisterIdentity(context.Background(), "t-1", "teacher"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got.Identity != "t-1" || got.Role != "teacher" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if gotRequestId == "" {
		t.Fatal("expected X-Request-Id header")
	}
}

func TestRegisterIdentity_Non2xxIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(&config.RegistryConfig{Endpoint: srv.URL})
	err := client.RegisterIdentity(context.Background(), "t-1", "teacher")
	if errorx.GetCode(err) != errorx.CodeUpstream {
		t.Fatalf("expected CodeUpstream, got %v", err)
	}
}

func TestRegisterIdentity_Unreachable(t *testing.T) {
	client := NewClient(&config.RegistryConfig{Endpoint: "http://127.0.0.1:1", Timeout: 1})
	err := client.RegisterIdentity(context.Background(), "t-1", "teacher")
	if errorx.GetCode(err) != errorx.CodeUpstream {
		t.Fatalf("expected CodeUpstream, got %v", err)
	}
}

func TestListIdentities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/identities" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]IdentityRole{
			{Identity: "t-1", Role: "teacher"},
			{Identity: "stu", Role: "student"},
		})
	}))
	defer srv.Close()

	client := NewClient(&config.RegistryConfig{Endpoint: srv.URL})
	identities, err := client.ListIdentities(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(identities) != 2 || identities[0].Identity != "t-1" {
		t.Fatalf("unexpected identities: %+v", identities)
	}
}
