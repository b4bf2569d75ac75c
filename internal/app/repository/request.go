package repository

import (
	"fmt"

	"veres-tariff/internal/app/ds"
)

// Методы для заявок на расчёт и коммерческих предложений

func (r *Repository) CreateRequest(request *ds.Request) error {
	return r.db.Create(request).Error
}

func (r *Repository) GetRequestByID(id uint) (*ds.Request, error) {
	var request ds.Request
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *Repository) ListRequestsByUser(userID uint) ([]ds.Request, error) {
	var requests []ds.Request
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *Repository) ListAllRequests(limit, offset int) ([]ds.Request, int64, error) {
	var total int64
	if err := r.db.Model(&ds.Request{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []ds.Request
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&requests).Error
	return requests, total, err
}

// Допустимые переходы статуса заявки, только вперёд
var statusTransitions = map[ds.RequestStatus]ds.RequestStatus{
	ds.RequestSaved:          ds.RequestOfferGenerated,
	ds.RequestOfferGenerated: ds.RequestDownloaded,
}

// canAdvanceStatus разрешает переход в тот же статус (повторная
// генерация или скачивание) и ровно на один шаг вперёд
func canAdvanceStatus(from, to ds.RequestStatus) bool {
	return from == to || statusTransitions[from] == to
}

// AdvanceRequestStatus переводит заявку в следующий статус.
// Переход проверяется на сервере, произвольная смена статуса запрещена
func (r *Repository) AdvanceRequestStatus(id uint, to ds.RequestStatus) error {
	request, err := r.GetRequestByID(id)
	if err != nil {
		return err
	}

	if request.Status == to {
		return nil
	}
	if !canAdvanceStatus(request.Status, to) {
		return fmt.Errorf("недопустимый переход статуса: %s -> %s", request.Status, to)
	}

	return r.db.Model(&ds.Request{}).Where("id = ?", id).Update("status", to).Error
}

func (r *Repository) DeleteRequest(id uint) error {
	return r.db.Delete(&ds.Request{}, id).Error
}

// Коммерческие предложения

func (r *Repository) CreateOffer(offer *ds.CommercialOffer) error {
	return r.db.Create(offer).Error
}

func (r *Repository) GetOfferByID(id uint) (*ds.CommercialOffer, error) {
	var offer ds.CommercialOffer
	err := r.db.First(&offer, id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *Repository) ListOffersByUser(userID uint) ([]ds.CommercialOffer, error) {
	var offers []ds.CommercialOffer
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *Repository) ListAllOffers(limit, offset int) ([]ds.CommercialOffer, int64, error) {
	var total int64
	if err := r.db.Model(&ds.CommercialOffer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var offers []ds.CommercialOffer
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&offers).Error
	return offers, total, err
}
