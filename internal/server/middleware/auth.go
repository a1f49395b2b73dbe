// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Julia-Rulova/mesto-api/internal/shared/logger"
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"

	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// JWTVerifier инкапсулирует параметры проверки токенов сессии.
//
// Используется в HTTP middleware для:
//   - извлечения токена из cookie "jwt" (браузерный фронтенд)
//     или заголовка Authorization: Bearer (CLI-клиент)
//   - проверки подписи и срока жизни токена
//   - валидации issuer и audience
//   - извлечения userID из claims.Subject
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
	CookieName string // имя cookie с токеном, по умолчанию "jwt"

	log *logger.HTTPLogger
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
//
// Ключ подписи прокидывается из конфига при старте процесса —
// пакет не держит никакого глобального секрета.
func NewJWTVerifier(signingKey, issuer, audience, cookieName string, log *logger.HTTPLogger) *JWTVerifier {
	if cookieName == "" {
		cookieName = "jwt"
	}
	return &JWTVerifier{
		SigningKey: signingKey,
		Issuer:     issuer,
		Audience:   audience,
		CookieName: cookieName,
		log:        log,
	}
}

// ContextWithUserID кладёт userID аутентифицированного пользователя в контекст.
// Используется самим middleware и тестами хендлеров.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки токенов сессии.
//
// Middleware:
//   - достаёт токен из cookie или заголовка Authorization
//   - валидирует подпись и claims токена
//   - извлекает userID из claims.Subject
//   - сохраняет userID в context.Context
//
// Любой отказ — отсутствующий, подделанный или просроченный токен —
// даёт ровно один и тот же ответ 401, чтобы не раскрывать причину
// снаружи. Конкретная причина пишется только во внутренний лог.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := v.extractToken(r)
			if tokenStr == "" {
				v.reject(w, r, "missing token")
				return
			}

			claims := &jwt.RegisteredClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})

			if err != nil {
				v.reject(w, r, err.Error())
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				v.reject(w, r, "invalid token issuer")
				return
			}

			if v.Audience != "" {
				ok := false
				for _, aud := range claims.Audience {
					if aud == v.Audience {
						ok = true
						break
					}
				}
				if !ok {
					v.reject(w, r, "invalid token audience")
					return
				}
			}

			userID := strings.TrimSpace(claims.Subject)
			if userID == "" {
				v.reject(w, r, "invalid token subject")
				return
			}

			ctx := ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken достаёт токен сессии из запроса.
//
// Приоритет за cookie (основной транспорт фронтенда); если cookie нет,
// пробуем Authorization: Bearer <token>.
func (v *JWTVerifier) extractToken(r *http.Request) string {
	if c, err := r.Cookie(v.CookieName); err == nil {
		if t := strings.TrimSpace(c.Value); t != "" {
			return t
		}
	}
	return ExtractBearer(r.Header.Get("Authorization"))
}

// reject отдаёт единый ответ 401, логируя настоящую причину отказа.
func (v *JWTVerifier) reject(w http.ResponseWriter, r *http.Request, cause string) {
	if v.log != nil {
		v.log.Logger.Info("auth rejected",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("cause", cause),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(sharedModels.ErrorResponse{
		Error: serr.ErrUnauthorized.Error(),
	})
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
