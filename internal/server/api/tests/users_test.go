package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

func TestHandler_GetMe_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(models.User{ID: userID, Email: "me@example.com", Name: "Жак-Ив Кусто"}, nil)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/users/me", nil), userID)
	rec := httptest.NewRecorder()

	h.GetMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedModels.User
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != userID.String() {
		t.Fatalf("expected id %q, got %q", userID, resp.ID)
	}
}

// Без userID в контексте сессии — 401
func TestHandler_GetMe_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	h.GetMe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// Запись пользователя исчезла, а токен ещё жив — 404
func TestHandler_GetMe_NotFound(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(models.User{}, serr.ErrNotFound)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/users/me", nil), userID)
	rec := httptest.NewRecorder()

	h.GetMe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandler_ListUsers_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	users.EXPECT().
		List(gomock.Any()).
		Return([]models.User{
			{ID: uuid.New(), Email: "a@example.com"},
			{ID: uuid.New(), Email: "b@example.com"},
		}, nil)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/users", nil), uuid.New())
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp sharedModels.UsersResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Data))
	}
}

func TestHandler_GetUser_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	targetID := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), targetID).
		Return(models.User{ID: targetID, Email: "target@example.com"}, nil)

	r := chi.NewRouter()
	r.Get("/users/{userId}", h.GetUser)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/users/"+targetID.String(), nil), uuid.New())
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

// Кривой формат id — 400, а не 404
func TestHandler_GetUser_BadID(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	r := chi.NewRouter()
	r.Get("/users/{userId}", h.GetUser)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil), uuid.New())
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	targetID := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), targetID).
		Return(models.User{}, serr.ErrNotFound)

	r := chi.NewRouter()
	r.Get("/users/{userId}", h.GetUser)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/users/"+targetID.String(), nil), uuid.New())
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

// Цель мутации всегда берётся из сессии, не из тела запроса
func TestHandler_UpdateProfile_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		UpdateProfile(gomock.Any(), userID, "Марина", "Фотограф").
		Return(models.User{ID: userID, Name: "Марина", About: "Фотограф"}, nil)

	body, _ := json.Marshal(sharedModels.UpdateProfileRequest{Name: "Марина", About: "Фотограф"})
	req := authedRequest(httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewReader(body)), userID)
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedModels.User
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "Марина" {
		t.Fatalf("expected updated name, got %q", resp.Name)
	}
}

func TestHandler_UpdateProfile_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := authedRequest(httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewBufferString("{bad json")), uuid.New())
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_UpdateProfile_InvalidInput(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(sharedModels.UpdateProfileRequest{Name: "Я", About: "Фотограф"})
	req := authedRequest(httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_UpdateProfile_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(sharedModels.UpdateProfileRequest{Name: "Марина", About: "Фотограф"})
	req := httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandler_UpdateAvatar_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()
	avatar := "https://example.com/new.jpg"

	users.EXPECT().
		UpdateAvatar(gomock.Any(), userID, avatar).
		Return(models.User{ID: userID, Avatar: avatar}, nil)

	body, _ := json.Marshal(sharedModels.UpdateAvatarRequest{Avatar: avatar})
	req := authedRequest(httptest.NewRequest(http.MethodPatch, "/users/me/avatar", bytes.NewReader(body)), userID)
	rec := httptest.NewRecorder()

	h.UpdateAvatar(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandler_UpdateAvatar_InvalidURL(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(sharedModels.UpdateAvatarRequest{Avatar: "not-a-url"})
	req := authedRequest(httptest.NewRequest(http.MethodPatch, "/users/me/avatar", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()

	h.UpdateAvatar(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
