package repository

import (
	"veres-tariff/internal/app/ds"
)

// Методы для поставщиков

func (r *Repository) GetSupplierByID(id uint) (*ds.Supplier, error) {
	var supplier ds.Supplier
	err := r.db.First(&supplier, id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *Repository) ListSuppliers() ([]ds.Supplier, error) {
	var suppliers []ds.Supplier
	err := r.db.Order("name").Find(&suppliers).Error
	return suppliers, err
}

// SuppliersByID возвращает поставщиков в виде словаря для расчёта
func (r *Repository) SuppliersByID() (map[uint]ds.Supplier, error) {
	suppliers, err := r.ListSuppliers()
	if err != nil {
		return nil, err
	}
	result := make(map[uint]ds.Supplier, len(suppliers))
	for _, s := range suppliers {
		result[s.ID] = s
	}
	return result, nil
}

func (r *Repository) CreateSupplier(supplier *ds.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *Repository) UpdateSupplier(supplier *ds.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *Repository) DeleteSupplier(id uint) error {
	return r.db.Delete(&ds.Supplier{}, id).Error
}

// SetSupplierMarkup обновляет только наценки поставщика
func (r *Repository) SetSupplierMarkup(id uint, markupPercent, markupFixed float64) error {
	return r.db.Model(&ds.Supplier{}).Where("id = ?", id).Updates(map[string]interface{}{
		"markup_percent": markupPercent,
		"markup_fixed":   markupFixed,
	}).Error
}
