package tests

import (
	"strings"
	"testing"

	crypt "github.com/Julia-Rulova/mesto-api/internal/server/crypto"
)

func bcryptParams() crypt.PasswordParams {
	return crypt.PasswordParams{
		Hasher: "bcrypt",
		Bcrypt: crypt.BcryptParams{Cost: 4}, // минимальный cost, чтобы тесты не тормозили
	}
}

func argon2Params() crypt.PasswordParams {
	return crypt.PasswordParams{
		Hasher: "argon2id",
		Argon2: crypt.Argon2Params{
			Time:      1,
			MemoryKiB: 32 * 1024,
			Threads:   1,
			KeyLen:    32,
			SaltLen:   16,
		},
	}
}

// Хэширование и успешная проверка (bcrypt)
func TestHashAndVerifyPassword_Bcrypt_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Хэширование и успешная проверка (argon2id)
func TestHashAndVerifyPassword_Argon2_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, argon2Params())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Неверный пароль — (false, nil), а не ошибка
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	hash, err := crypt.HashPassword("correct-password", bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if ok {
		t.Fatal("expected password to be invalid")
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := crypt.HashPassword("", bcryptParams())
	if err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Неизвестный хэшер
func TestHashPassword_UnknownHasher(t *testing.T) {
	_, err := crypt.HashPassword("password", crypt.PasswordParams{Hasher: "md5"})
	if err == nil {
		t.Fatal("expected error for unknown hasher")
	}
}

// Битый формат хэша — ошибка, а не "пароль не подошёл"
func TestVerifyPassword_InvalidFormat(t *testing.T) {
	_, err := crypt.VerifyPassword("password", "not-a-valid-hash")
	if err == nil {
		t.Fatal("expected error for invalid hash format")
	}
}

// Битый argon2id-формат
func TestVerifyPassword_InvalidArgon2Format(t *testing.T) {
	_, err := crypt.VerifyPassword("password", "argon2id$broken")
	if err == nil {
		t.Fatal("expected error for invalid argon2id format")
	}
}

// Проверка: соль разная (хэши разные)
func TestHashPassword_DifferentSalt(t *testing.T) {
	password := "same-password"

	h1, _ := crypt.HashPassword(password, argon2Params())
	h2, _ := crypt.HashPassword(password, argon2Params())

	if h1 == h2 {
		t.Fatal("expected different hashes for same password")
	}
}

// Хэш, сделанный argon2id, проверяется и после переключения дефолта на bcrypt:
// формат самоописываемый, VerifyPassword не зависит от текущего конфига.
func TestVerifyPassword_MixedHashers(t *testing.T) {
	password := "portable-password"

	hash, err := crypt.HashPassword(password, argon2Params())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected argon2id hash to verify regardless of configured hasher")
	}
}
