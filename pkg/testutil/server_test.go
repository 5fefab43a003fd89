package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func TestServer_LoginIssuesVerifiableToken(t *testing.T) {
	s := NewServer()
	defer s.Close()

	body, _ := json.Marshal(map[string]string{"email": DefaultEmail, "password": DefaultPassword})
	resp, err := http.Post(s.URL()+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Token == "" {
		t.Fatal("login should issue a token")
	}

	// The issued token passes the auth middleware.
	req, _ := http.NewRequest(http.MethodGet, s.URL()+"/buyer/listBuyer", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	authed, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	authed.Body.Close()
	if authed.StatusCode != http.StatusOK {
		t.Errorf("authorized request status = %d, want 200", authed.StatusCode)
	}
}

func TestServer_RejectsBadCredentialsAndTokens(t *testing.T) {
	s := NewServer()
	defer s.Close()

	body, _ := json.Marshal(map[string]string{"email": DefaultEmail, "password": "wrong"})
	resp, err := http.Post(s.URL()+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad credentials status = %d, want 401", resp.StatusCode)
	}
	var out struct {
		Error string `json:"error"`
	}
	json.NewDecoder(resp.Body).Decode(&out)
	if out.Error != "invalid credentials" {
		t.Errorf("error = %q, want invalid credentials", out.Error)
	}

	// No token at all.
	bare, err := http.Get(s.URL() + "/buyer/listBuyer")
	if err != nil {
		t.Fatal(err)
	}
	bare.Body.Close()
	if bare.StatusCode != http.StatusUnauthorized {
		t.Errorf("tokenless status = %d, want 401", bare.StatusCode)
	}

	// A token signed elsewhere.
	req, _ := http.NewRequest(http.MethodGet, s.URL()+"/buyer/listBuyer", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	forged, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	forged.Body.Close()
	if forged.StatusCode != http.StatusUnauthorized {
		t.Errorf("forged token status = %d, want 401", forged.StatusCode)
	}
}
