package repository

import (
	"time"

	"gorm.io/gorm"

	"veres-tariff/internal/app/ds"
)

// Методы для тарифов и архива

// TariffFilter - условия выборки тарифов для расчёта и списков
type TariffFilter struct {
	TransportType string
	Basis         string
	OriginCity    string
	DestCity      string
	VehicleType   string
	SupplierIDs   []uint
}

func applyTariffFilter(query *gorm.DB, f TariffFilter) *gorm.DB {
	if f.TransportType != "" {
		query = query.Where("transport_type = ?", f.TransportType)
	}
	if f.Basis != "" {
		query = query.Where("basis = ?", f.Basis)
	}
	if f.OriginCity != "" {
		query = query.Where("origin_city = ?", f.OriginCity)
	}
	if f.DestCity != "" {
		query = query.Where("dest_city = ?", f.DestCity)
	}
	if f.VehicleType != "" {
		query = query.Where("vehicle_type = ?", f.VehicleType)
	}
	if len(f.SupplierIDs) > 0 {
		query = query.Where("supplier_id IN ?", f.SupplierIDs)
	}
	return query
}

func (r *Repository) FindTariffs(f TariffFilter) ([]ds.Tariff, error) {
	var tariffs []ds.Tariff
	err := applyTariffFilter(r.db.Model(&ds.Tariff{}), f).Find(&tariffs).Error
	return tariffs, err
}

func (r *Repository) FindArchivedTariffs(f TariffFilter) ([]ds.TariffArchive, error) {
	var tariffs []ds.TariffArchive
	query := applyTariffFilter(r.db.Model(&ds.TariffArchive{}), f).
		Where("is_active = ?", true).
		Order("archived_at DESC")
	err := query.Find(&tariffs).Error
	return tariffs, err
}

func (r *Repository) GetTariffByID(id uint) (*ds.Tariff, error) {
	var tariff ds.Tariff
	err := r.db.First(&tariff, id).Error
	if err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (r *Repository) CreateTariff(tariff *ds.Tariff) error {
	return r.db.Create(tariff).Error
}

func (r *Repository) UpdateTariff(tariff *ds.Tariff) error {
	return r.db.Save(tariff).Error
}

// ListTariffs возвращает тарифы с пагинацией
func (r *Repository) ListTariffs(f TariffFilter, limit, offset int) ([]ds.Tariff, int64, error) {
	var total int64
	if err := applyTariffFilter(r.db.Model(&ds.Tariff{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tariffs []ds.Tariff
	query := applyTariffFilter(r.db.Model(&ds.Tariff{}), f).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&tariffs).Error
	return tariffs, total, err
}

// ArchiveTariff переносит тариф в архив и удаляет активную запись.
// Выполняется в транзакции
func (r *Repository) ArchiveTariff(id uint, reason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tariff ds.Tariff
		if err := tx.First(&tariff, id).Error; err != nil {
			return err
		}

		archived := tariffToArchive(tariff, reason)
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}

		return tx.Delete(&ds.Tariff{}, id).Error
	})
}

// ReplaceTariff создаёт новый тариф, архивируя старые тарифы того же
// поставщика по тому же маршруту
func (r *Repository) ReplaceTariff(tariff *ds.Tariff) (int, error) {
	archivedCount := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []ds.Tariff
		err := tx.Where(
			"supplier_id = ? AND transport_type = ? AND origin_city = ? AND dest_city = ?",
			tariff.SupplierID, tariff.TransportType, tariff.OriginCity, tariff.DestCity,
		).Find(&existing).Error
		if err != nil {
			return err
		}

		for _, old := range existing {
			archived := tariffToArchive(old, "заменён новым тарифом")
			if err := tx.Create(&archived).Error; err != nil {
				return err
			}
			if err := tx.Delete(&ds.Tariff{}, old.ID).Error; err != nil {
				return err
			}
			archivedCount++
		}

		return tx.Create(tariff).Error
	})
	return archivedCount, err
}

func (r *Repository) DeactivateArchivedTariff(id uint) error {
	return r.db.Model(&ds.TariffArchive{}).Where("id = ?", id).Update("is_active", false).Error
}

func tariffToArchive(t ds.Tariff, reason string) ds.TariffArchive {
	return ds.TariffArchive{
		OriginalTariffID:     t.ID,
		SupplierID:           t.SupplierID,
		TransportType:        t.TransportType,
		Basis:                t.Basis,
		OriginCountry:        t.OriginCountry,
		OriginCity:           t.OriginCity,
		BorderPoint:          t.BorderPoint,
		DestCountry:          t.DestCountry,
		DestCity:             t.DestCity,
		VehicleType:          t.VehicleType,
		PriceRub:             t.PriceRub,
		PriceUsd:             t.PriceUsd,
		ValidityDate:         t.ValidityDate,
		TransitTimeDays:      t.TransitTimeDays,
		SourceFile:           t.SourceFile,
		TransitPort:          t.TransitPort,
		DepartureStation:     t.DepartureStation,
		ArrivalStation:       t.ArrivalStation,
		RailTariffRub:        t.RailTariffRub,
		CbxCost:              t.CbxCost,
		TerminalHandlingCost: t.TerminalHandlingCost,
		AutoPickupCost:       t.AutoPickupCost,
		SecurityCost:         t.SecurityCost,
		PrecarriageCost:      t.PrecarriageCost,
		ArchivedAt:           time.Now(),
		ArchiveReason:        reason,
		IsActive:             true,
		CreatedByUserID:      t.CreatedByUserID,
	}
}
