package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	"github.com/Julia-Rulova/mesto-api/internal/server/service"
	"github.com/Julia-Rulova/mesto-api/internal/server/service/mocks"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// создаём сервис
func newUsersService(t *testing.T) (*service.UsersService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepo(ctrl)

	return service.NewUsersService(repo), repo
}

// Успех
func TestUsersService_GetByID_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUsersService(t)

	id := uuid.New()

	repo.EXPECT().
		GetByID(ctx, id).
		Return(models.User{ID: id, Name: "Жак-Ив Кусто"}, nil)

	got, err := svc.GetByID(ctx, id)

	require.NoError(t, err)
	require.Equal(t, id, got.ID)
}

// Пользователь не найден
func TestUsersService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUsersService(t)

	id := uuid.New()

	repo.EXPECT().
		GetByID(ctx, id).
		Return(models.User{}, serr.ErrNotFound)

	_, err := svc.GetByID(ctx, id)

	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Список пользователей
func TestUsersService_List_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUsersService(t)

	repo.EXPECT().
		List(ctx).
		Return([]models.User{{Name: "a"}, {Name: "b"}}, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
}

// Успех: пробелы по краям срезаются до валидации и записи
func TestUsersService_UpdateProfile_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUsersService(t)

	actingID := uuid.New()

	repo.EXPECT().
		UpdateProfile(ctx, actingID, "Марина", "Фотограф").
		Return(models.User{ID: actingID, Name: "Марина", About: "Фотограф"}, nil)

	got, err := svc.UpdateProfile(ctx, actingID, "  Марина ", " Фотограф  ")

	require.NoError(t, err)
	require.Equal(t, "Марина", got.Name)
}

// Поля вне схемы — репозиторий не вызывается
func TestUsersService_UpdateProfile_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUsersService(t)

	cases := []struct {
		name  string
		field string
		about string
	}{
		{"пустое имя", "", "Фотограф"},
		{"имя в один символ", "Я", "Фотограф"},
		{"имя длиннее 30 символов", strings.Repeat("ы", 31), "Фотограф"},
		{"пустое описание", "Марина", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(ctx, uuid.New(), tc.field, tc.about)
			require.ErrorIs(t, err, serr.ErrInvalidInput)
		})
	}
}

// Длина считается в символах, не в байтах: 30 кириллических букв валидны
func TestUsersService_UpdateProfile_RuneCount(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUsersService(t)

	actingID := uuid.New()
	name := strings.Repeat("ы", 30)

	repo.EXPECT().
		UpdateProfile(ctx, actingID, name, "Фотограф").
		Return(models.User{ID: actingID, Name: name}, nil)

	_, err := svc.UpdateProfile(ctx, actingID, name, "Фотограф")

	require.NoError(t, err)
}

// Успех
func TestUsersService_UpdateAvatar_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUsersService(t)

	actingID := uuid.New()

	repo.EXPECT().
		UpdateAvatar(ctx, actingID, "https://example.com/new.jpg").
		Return(models.User{ID: actingID, Avatar: "https://example.com/new.jpg"}, nil)

	got, err := svc.UpdateAvatar(ctx, actingID, "https://example.com/new.jpg")

	require.NoError(t, err)
	require.Equal(t, "https://example.com/new.jpg", got.Avatar)
}

// Ссылка не похожа на URL — репозиторий не вызывается
func TestUsersService_UpdateAvatar_InvalidURL(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUsersService(t)

	for _, link := range []string{"", "not-a-url", "ftp://host/a.jpg"} {
		_, err := svc.UpdateAvatar(ctx, uuid.New(), link)
		require.ErrorIs(t, err, serr.ErrInvalidInput)
	}
}
