package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Julia-Rulova/mesto-api/internal/agent/cli"
	"github.com/Julia-Rulova/mesto-api/internal/agent/config"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

const testCardID = "8a6e0804-2bd0-4672-b79d-d97027f9071a"

func newLikeApp(t *testing.T, serverURL, token string) *cli.App {
	t.Helper()

	return &cli.App{
		ServerURL: serverURL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{Token: token},
	}
}

func TestNewLikeCmd_Success_PrintsLikesCount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cards/"+testCardID+"/likes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Fatalf("expected bearer token, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    testCardID,
			"likes": []string{"u1"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newLikeApp(t, srv.URL, "token-1")

	cmd := cli.NewLikeCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--id", testCardID})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "card "+testCardID+" likes=1") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewLikeCmd_NoToken_ReturnsError(t *testing.T) {
	app := newLikeApp(t, "https://127.0.0.1:3000", "")

	cmd := cli.NewLikeCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--id", testCardID})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "no token") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewDislikeCmd_Success_PrintsLikesCount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cards/"+testCardID+"/likes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    testCardID,
			"likes": []string{},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newLikeApp(t, srv.URL, "token-1")

	cmd := cli.NewDislikeCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--id", testCardID})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "card "+testCardID+" likes=0") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewDislikeCmd_CardNotFound_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cards/"+testCardID+"/likes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newLikeApp(t, srv.URL, "token-1")

	cmd := cli.NewDislikeCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--id", testCardID})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}
