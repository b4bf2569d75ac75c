package redis

import (
	"context"
	"strconv"
	"time"
)

const currencyPrefix = servicePrefix + "currency."

// Курсы валют кэшируются на час, чтобы не ходить в ЦБ на каждый расчёт
const currencyTTL = time.Hour

func getCurrencyKey(code string) string {
	return currencyPrefix + code
}

func (c *Client) SetCurrencyRate(ctx context.Context, code string, rate float64) error {
	return c.client.Set(ctx, getCurrencyKey(code), strconv.FormatFloat(rate, 'f', -1, 64), currencyTTL).Err()
}

func (c *Client) GetCurrencyRate(ctx context.Context, code string) (float64, error) {
	val, err := c.client.Get(ctx, getCurrencyKey(code)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(val, 64)
}
