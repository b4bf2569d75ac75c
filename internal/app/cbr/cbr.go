package cbr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"veres-tariff/internal/app/redis"
)

const dailyURL = "https://www.cbr.ru/scripts/XML_daily.asp"

// Запасные курсы на случай недоступности ЦБ
var fallbackRates = map[string]float64{
	"USD": 95.0,
	"EUR": 105.0,
	"CNY": 13.0,
	"RUB": 1.0,
}

// Client ходит в ЦБ РФ за курсами валют и кэширует их в Redis на час
type Client struct {
	httpClient *http.Client
	redis      *redis.Client
	baseURL    string
}

func New(redisClient *redis.Client) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		redis:      redisClient,
		baseURL:    dailyURL,
	}
}

type valCurs struct {
	XMLName xml.Name `xml:"ValCurs"`
	Date    string   `xml:"Date,attr"`
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Nominal  int    `xml:"Nominal"`
	Value    string `xml:"Value"`
}

// Rates возвращает курсы всех валют за сегодня (за 1 единицу валюты)
func (c *Client) Rates(ctx context.Context) (map[string]float64, error) {
	return c.ratesForDate(ctx, time.Now())
}

// RatesForDate возвращает исторические курсы на заданную дату
func (c *Client) RatesForDate(ctx context.Context, date time.Time) (map[string]float64, error) {
	return c.ratesForDate(ctx, date)
}

func (c *Client) ratesForDate(ctx context.Context, date time.Time) (map[string]float64, error) {
	url := fmt.Sprintf("%s?date_req=%s", c.baseURL, date.Format("02/01/2006"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cbr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cbr returned status %d", resp.StatusCode)
	}

	// ЦБ отдаёт XML в windows-1251
	decoder := xml.NewDecoder(resp.Body)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "windows-1251") {
			return transform.NewReader(input, charmap.Windows1251.NewDecoder()), nil
		}
		return input, nil
	}

	var curs valCurs
	if err := decoder.Decode(&curs); err != nil {
		return nil, fmt.Errorf("cant parse cbr xml: %w", err)
	}

	rates := map[string]float64{"RUB": 1.0}
	for _, v := range curs.Valutes {
		value, err := strconv.ParseFloat(strings.Replace(v.Value, ",", ".", 1), 64)
		if err != nil || v.Nominal <= 0 {
			continue
		}
		rates[v.CharCode] = value / float64(v.Nominal)
	}

	return rates, nil
}

// Rate возвращает курс валюты к рублю: сначала кэш в Redis,
// затем ЦБ, в крайнем случае запасное значение
func (c *Client) Rate(ctx context.Context, code string) float64 {
	if code == "RUB" {
		return 1.0
	}

	if c.redis != nil {
		if rate, err := c.redis.GetCurrencyRate(ctx, code); err == nil && rate > 0 {
			return rate
		}
	}

	rates, err := c.Rates(ctx)
	if err != nil {
		logrus.Errorf("Ошибка получения курсов валют: %v", err)
		return fallbackRates[code]
	}

	rate, ok := rates[code]
	if !ok {
		logrus.Warnf("Курс валюты не найден: %s", code)
		return fallbackRates[code]
	}

	if c.redis != nil {
		if err := c.redis.SetCurrencyRate(ctx, code, rate); err != nil {
			logrus.Warnf("Не удалось закэшировать курс %s: %v", code, err)
		}
	}

	return rate
}

// UsdRate возвращает курс доллара к рублю
func (c *Client) UsdRate(ctx context.Context) float64 {
	return c.Rate(ctx, "USD")
}

// Convert конвертирует сумму между валютами через рубль
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	if to == "RUB" {
		return amount * c.Rate(ctx, from)
	}
	if from == "RUB" {
		toRate := c.Rate(ctx, to)
		if toRate == 0 {
			return amount
		}
		return amount / toRate
	}
	toRate := c.Rate(ctx, to)
	if toRate == 0 {
		return amount
	}
	return amount * c.Rate(ctx, from) / toRate
}
