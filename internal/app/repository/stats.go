package repository

import (
	"time"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
)

// Сводная статистика для панели администратора
func (r *Repository) GetStats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{
		UsersByRole: make(map[string]int64),
	}

	counters := []struct {
		model interface{}
		dest  *int64
	}{
		{&ds.User{}, &stats.UsersTotal},
		{&ds.Supplier{}, &stats.SuppliersTotal},
		{&ds.Tariff{}, &stats.TariffsTotal},
		{&ds.Request{}, &stats.RequestsTotal},
		{&ds.CommercialOffer{}, &stats.OffersTotal},
	}
	for _, c := range counters {
		if err := r.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	rows, err := r.db.Model(&ds.User{}).
		Select("role, count(*) as count").
		Group("role").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		stats.UsersByRole[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	trends := []struct {
		model interface{}
		since time.Time
		dest  *int64
	}{
		{&ds.Request{}, now.AddDate(0, 0, -7), &stats.RequestsLastWeek},
		{&ds.Request{}, now.AddDate(0, -1, 0), &stats.RequestsLastMonth},
		{&ds.CommercialOffer{}, now.AddDate(0, -1, 0), &stats.OffersLastMonth},
	}
	for _, tr := range trends {
		if err := r.db.Model(tr.model).Where("created_at >= ?", tr.since).Count(tr.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// ListRequestUsers возвращает пользователей, у которых есть заявки,
// с количеством заявок и датой последнего обращения
func (r *Repository) ListRequestUsers() ([]dto.RequestHistoryUser, error) {
	var users []dto.RequestHistoryUser
	err := r.db.Table("requests").
		Select("users.id as user_id, users.username, users.full_name, users.role, count(requests.id) as requests_count, max(requests.created_at) as last_request_at").
		Joins("JOIN users ON users.id = requests.user_id").
		Group("users.id, users.username, users.full_name, users.role").
		Order("last_request_at DESC").
		Scan(&users).Error
	return users, err
}
