package repository

import (
	"veres-tariff/internal/app/ds"
)

// Методы для вспомогательных справочников расходов

func (r *Repository) ListSVH() ([]ds.AuxiliarySVH, error) {
	var records []ds.AuxiliarySVH
	err := r.db.Find(&records).Error
	return records, err
}

func (r *Repository) ListTrucking() ([]ds.AuxiliaryTrucking, error) {
	var records []ds.AuxiliaryTrucking
	err := r.db.Find(&records).Error
	return records, err
}

func (r *Repository) ListPrecarriageRail() ([]ds.AuxiliaryPrecarriageRail, error) {
	var records []ds.AuxiliaryPrecarriageRail
	err := r.db.Find(&records).Error
	return records, err
}

func (r *Repository) ListPrecarriageSea() ([]ds.AuxiliaryPrecarriageSea, error) {
	var records []ds.AuxiliaryPrecarriageSea
	err := r.db.Find(&records).Error
	return records, err
}

func (r *Repository) CreateSVH(record *ds.AuxiliarySVH) error {
	return r.db.Create(record).Error
}

func (r *Repository) CreateTrucking(record *ds.AuxiliaryTrucking) error {
	return r.db.Create(record).Error
}

func (r *Repository) CreatePrecarriageRail(record *ds.AuxiliaryPrecarriageRail) error {
	return r.db.Create(record).Error
}

func (r *Repository) CreatePrecarriageSea(record *ds.AuxiliaryPrecarriageSea) error {
	return r.db.Create(record).Error
}
