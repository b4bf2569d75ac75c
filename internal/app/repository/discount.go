package repository

import (
	"gorm.io/gorm/clause"

	"veres-tariff/internal/app/ds"
)

// Методы для скидок пользователей

// SetDiscount создаёт или обновляет скидку пары пользователь-поставщик
func (r *Repository) SetDiscount(discount *ds.Discount) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "supplier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"discount_percent"}),
	}).Create(discount).Error
}

func (r *Repository) ListDiscountsByUser(userID uint) ([]ds.Discount, error) {
	var discounts []ds.Discount
	err := r.db.Where("user_id = ?", userID).Find(&discounts).Error
	return discounts, err
}

// DiscountMapForUser возвращает скидки пользователя в виде
// supplier_id -> процент для расчёта
func (r *Repository) DiscountMapForUser(userID uint) (map[uint]float64, error) {
	discounts, err := r.ListDiscountsByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make(map[uint]float64, len(discounts))
	for _, d := range discounts {
		result[d.SupplierID] = d.DiscountPercent
	}
	return result, nil
}

func (r *Repository) ListDiscounts() ([]ds.Discount, error) {
	var discounts []ds.Discount
	err := r.db.Order("user_id, supplier_id").Find(&discounts).Error
	return discounts, err
}

func (r *Repository) GetDiscountByID(id uint) (*ds.Discount, error) {
	discount := &ds.Discount{}
	if err := r.db.First(discount, id).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

func (r *Repository) UpdateDiscount(discount *ds.Discount) error {
	return r.db.Save(discount).Error
}

func (r *Repository) DeleteDiscount(id uint) error {
	return r.db.Delete(&ds.Discount{}, id).Error
}
