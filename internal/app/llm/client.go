package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/config"
	"veres-tariff/internal/app/dto"
)

// Client - прокси к Ollama-совместимому LLM-сервису, который
// извлекает тарифные строки из неструктурированного текста
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func New(cfg config.LLMConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

const promptTemplate = `Извлеки тарифы на перевозку из текста ниже.
Ответь строго JSON-объектом вида {"tariffs": [...]}, где каждый элемент содержит поля:
origin_city, destination_city, price_rub или price_usd (число), basis, vehicle_type, transit_time_days.
Тип перевозки: %s. Если данных нет, верни {"tariffs": []}.

Текст:
%s`

// Parse отправляет текст в LLM и разбирает ответ в тарифные строки.
// Сырой ответ модели возвращается вместе с результатом
func (c *Client) Parse(ctx context.Context, text, transportType string) ([]dto.TariffRequest, string, error) {
	if transportType == "" {
		transportType = "auto"
	}

	reqBody, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, transportType, text),
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(reqBody))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("llm returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, "", fmt.Errorf("cant parse llm response: %w", err)
	}

	tariffs, err := ParseTariffJSON(genResp.Response, transportType)
	if err != nil {
		logrus.Warnf("LLM вернул некорректный JSON: %v", err)
		return nil, genResp.Response, nil
	}

	return tariffs, genResp.Response, nil
}

// Models возвращает список моделей, доступных на LLM-сервисе
func (c *Client) Models(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm returned status %d", resp.StatusCode)
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("cant parse llm response: %w", err)
	}

	names := make([]string, len(tags.Models))
	for i, m := range tags.Models {
		names[i] = m.Name
	}
	return names, nil
}

// ParseTariffJSON разбирает ответ модели: либо объект {"tariffs": [...]},
// либо просто массив тарифов
func ParseTariffJSON(raw, transportType string) ([]dto.TariffRequest, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var wrapper struct {
		Tariffs []dto.TariffRequest `json:"tariffs"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err == nil && wrapper.Tariffs != nil {
		return fillTransportType(wrapper.Tariffs, transportType), nil
	}

	var list []dto.TariffRequest
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return fillTransportType(list, transportType), nil
}

func fillTransportType(tariffs []dto.TariffRequest, transportType string) []dto.TariffRequest {
	for i := range tariffs {
		if tariffs[i].TransportType == "" {
			tariffs[i].TransportType = transportType
		}
		if tariffs[i].Basis == "" {
			tariffs[i].Basis = "FCA"
		}
	}
	return tariffs
}

// DetectTransportType угадывает тип перевозки по имени файла
func DetectTransportType(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case containsAny(name, "air", "авиа", "воздушн"):
		return "air"
	case containsAny(name, "sea", "море", "морск", "fcl", "lcl"):
		return "sea"
	case containsAny(name, "rail", "жд", "железнодорожн", "railway"):
		return "rail"
	case containsAny(name, "multimodal", "мульти", "комбинированн"):
		return "multimodal"
	default:
		return "auto"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
