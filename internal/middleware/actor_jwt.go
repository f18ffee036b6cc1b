package middleware

import (
	"errors"
	"strings"

	"dashboard/internal/store"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const CtxActorKey = "actor" // string

// ActorJWTはBearerトークンから操作者を取り出して監査ログ用にcontextへ入れる。
// 認可はしない。トークンがない・不正なときは匿名のまま次へ進む。
func ActorJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := store.AnonymousActor
			if secret != "" {
				if a, err := actorFromHeader(c.Request().Header.Get("Authorization"), secret); err == nil {
					actor = a
				}
			}

			c.Set(CtxActorKey, actor)
			req := c.Request()
			c.SetRequest(req.WithContext(store.WithActor(req.Context(), actor)))

			return next(c)
		}
	}
}

func actorFromHeader(authz string, secret string) (string, error) {
	//Bearer形式か確認してtokenを抜く
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("no bearer token")
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return "", errors.New("empty token")
	}

	//JWTをパースして検証する
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	//nameがあれば優先、なければsub
	if name, err := parseString(claims["name"]); err == nil && name != "" {
		return name, nil
	}
	sub, err := parseString(claims["sub"])
	if err != nil || sub == "" {
		return "", errors.New("invalid sub")
	}
	return sub, nil
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}
