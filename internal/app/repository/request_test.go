package repository

import (
	"testing"

	"veres-tariff/internal/app/ds"
)

func TestCanAdvanceStatus(t *testing.T) {
	tests := []struct {
		name string
		from ds.RequestStatus
		to   ds.RequestStatus
		want bool
	}{
		{"сохранена -> КП сформировано", ds.RequestSaved, ds.RequestOfferGenerated, true},
		{"КП сформировано -> скачано", ds.RequestOfferGenerated, ds.RequestDownloaded, true},
		{"повторный переход в тот же статус", ds.RequestDownloaded, ds.RequestDownloaded, true},
		{"пропуск шага запрещён", ds.RequestSaved, ds.RequestDownloaded, false},
		{"откат назад запрещён", ds.RequestDownloaded, ds.RequestSaved, false},
		{"откат к сохранённой запрещён", ds.RequestOfferGenerated, ds.RequestSaved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canAdvanceStatus(tt.from, tt.to); got != tt.want {
				t.Errorf("canAdvanceStatus(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
