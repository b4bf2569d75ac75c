package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindJSON(t *testing.T, body string, target interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(target)
}

// Процентная наценка ограничена диапазоном 0-100
func TestSetMarkupRequestBounds(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"обычная наценка", `{"markup_percent": 15, "markup_fixed": 500}`, false},
		{"граница в сто процентов", `{"markup_percent": 100, "markup_fixed": 0}`, false},
		{"нулевая наценка", `{"markup_percent": 0, "markup_fixed": 0}`, false},
		{"больше ста процентов", `{"markup_percent": 150, "markup_fixed": 0}`, true},
		{"отрицательная наценка", `{"markup_percent": -1, "markup_fixed": 0}`, true},
		{"отрицательная фиксированная", `{"markup_percent": 10, "markup_fixed": -100}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request SetMarkupRequest
			err := bindJSON(t, tt.body, &request)
			if (err != nil) != tt.wantErr {
				t.Errorf("bind error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSupplierRequestMarkupBounds(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"допустимая наценка", `{"name": "ТЭК Восток", "markup_percent": 20}`, false},
		{"наценка выше ста", `{"name": "ТЭК Восток", "markup_percent": 120}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request CreateSupplierRequest
			err := bindJSON(t, tt.body, &request)
			if (err != nil) != tt.wantErr {
				t.Errorf("bind error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateDiscountRequestBounds(t *testing.T) {
	var request UpdateDiscountRequest
	if err := bindJSON(t, `{"discount_percent": 101}`, &request); err == nil {
		t.Error("скидка выше ста процентов должна отклоняться")
	}
	if err := bindJSON(t, `{"discount_percent": 5}`, &request); err != nil {
		t.Errorf("допустимая скидка отклонена: %v", err)
	}
}
