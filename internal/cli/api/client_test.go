package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDo_SendsBearerTokenAndRequestID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("Authorization header: %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatalf("X-Request-Id header missing")
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["title"] != "x" {
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","title":"x","url":"https://x"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, func() string { return "tok123" }, nil)
	link, err := c.CreateLink(context.Background(), LinkPayload{Title: "x", URL: "https://x"})
	if err != nil {
		t.Fatalf("CreateLink: %v", err)
	}
	if link.ID != "1" || link.Title != "x" {
		t.Fatalf("decoded link: %+v", link)
	}
}

func TestDo_AnonymousHasNoAuthorizationHeader(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("unexpected Authorization header")
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := New(ts.URL, nil, nil)
	if _, err := c.PublicLinks(context.Background(), "alice"); err != nil {
		t.Fatalf("PublicLinks: %v", err)
	}
}

func TestDo_ServerMessageBecomesTypedError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"username already taken"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, nil, nil)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "secret", Username: "a", Name: "A"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "username already taken" {
		t.Fatalf("error: %+v", apiErr)
	}
	if got := ErrorMessage(err, "fallback"); got != "username already taken" {
		t.Fatalf("ErrorMessage: %q", got)
	}
}

func TestErrorMessage_FallbackForTransportErrors(t *testing.T) {
	c := New("http://127.0.0.1:0", nil, nil)
	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an *api.Error")
	}
	if got := ErrorMessage(err, "Failed to load profile."); got != "Failed to load profile." {
		t.Fatalf("ErrorMessage: %q", got)
	}
}

func TestPublicProfile_404IsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c := New(ts.URL, nil, nil)
	_, err := c.PublicProfile(context.Background(), "ghost")
	var apiErr *Error
	if !errors.As(err, &apiErr) || !apiErr.NotFound() {
		t.Fatalf("expected 404 *api.Error, got %v", err)
	}
}

func TestMyFeedbacks_PaginationParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feedback" {
			t.Fatalf("path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "5" {
			t.Fatalf("query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"f1","content":"nice profile!","createdAt":"2026-01-02T03:04:05Z","isPublic":true}],"page":2,"limit":5,"total":11}`))
	}))
	defer ts.Close()

	c := New(ts.URL, func() string { return "t" }, nil)
	page, err := c.MyFeedbacks(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("MyFeedbacks: %v", err)
	}
	if len(page.Data) != 1 || page.Total != 11 || !page.Data[0].IsPublic {
		t.Fatalf("page: %+v", page)
	}
}

func TestLogin_DecodesAuthResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"access_token":"t1","user":{"id":"1","name":"A"}}`))
	}))
	defer ts.Close()

	c := New(ts.URL, nil, nil)
	resp, err := c.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken != "t1" || resp.User.ID != "1" || resp.User.Name != "A" {
		t.Fatalf("resp: %+v", resp)
	}
}

func TestDeleteLink_NoBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/links/l1" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, func() string { return "t" }, nil)
	if err := c.DeleteLink(context.Background(), "l1"); err != nil {
		t.Fatalf("DeleteLink: %v", err)
	}
}

func TestReorderLinks_Payload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/links/reorder" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		var m map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if len(m["linkIds"]) != 2 || m["linkIds"][0] != "b" {
			t.Fatalf("payload: %#v", m)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := New(ts.URL, func() string { return "t" }, nil)
	if err := c.ReorderLinks(context.Background(), []string{"b", "a"}); err != nil {
		t.Fatalf("ReorderLinks: %v", err)
	}
}
