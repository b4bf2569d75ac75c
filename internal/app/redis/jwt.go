package redis

import (
	"context"
	"time"
)

const jwtPrefix = servicePrefix + "jwt."

func getJWTKey(token string) string {
	return jwtPrefix + token
}

// WriteJWTToBlacklist помещает токен в блэклист до истечения его срока жизни
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, getJWTKey(jwtStr), true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil, если токен найден в блэклисте
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, getJWTKey(jwtStr)).Err()
}
