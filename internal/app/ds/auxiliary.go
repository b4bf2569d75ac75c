package ds

// Вспомогательные справочники расходов. Используются при расчёте
// полной стоимости доставки поверх базового тарифа.

// Ставки СВХ (склад временного хранения) по городам назначения
type AuxiliarySVH struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	City         string  `gorm:"type:varchar(100);not null;index" json:"city"`
	Name         string  `gorm:"type:varchar(150);not null" json:"name"`
	HandlingCost float64 `gorm:"type:decimal(12,2);not null" json:"handling_cost"`
}

// Ставки автовывоза со СВХ до города назначения
type AuxiliaryTrucking struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	DestCity  string  `gorm:"type:varchar(100);not null;index" json:"destination_city"`
	SVHID     uint    `gorm:"not null;index" json:"svh_id"`
	KmFromSVH float64 `gorm:"type:decimal(10,2);not null" json:"km_from_svh"`
	BaseRate  float64 `gorm:"type:decimal(12,2);not null" json:"base_rate"`
	PerKmRate float64 `gorm:"type:decimal(12,2);not null" json:"per_km_rate"`

	SVH AuxiliarySVH `gorm:"foreignKey:SVHID" json:"-"`
}

// Прекэридж до станции отправления (ЖД)
type AuxiliaryPrecarriageRail struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	OriginCity    string   `gorm:"type:varchar(100);not null;index" json:"origin_city"`
	Station       string   `gorm:"type:varchar(100);not null" json:"station"`
	KmFromStation float64  `gorm:"type:decimal(10,2);not null" json:"km_from_station"`
	BaseRate      float64  `gorm:"type:decimal(12,2);not null" json:"base_rate"`
	PerKmRate     float64  `gorm:"type:decimal(12,2);not null" json:"per_km_rate"`
	LocalCharges  *float64 `gorm:"type:decimal(12,2)" json:"local_charges"`
}

// Прекэридж до порта отправления (море и мультимодальные)
type AuxiliaryPrecarriageSea struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OriginCity string   `gorm:"type:varchar(100);not null;index" json:"origin_city"`
	Port       string   `gorm:"type:varchar(100);not null" json:"port"`
	KmFromPort float64  `gorm:"type:decimal(10,2);not null" json:"km_from_port"`
	BaseRate   float64  `gorm:"type:decimal(12,2);not null" json:"base_rate"`
	PerKmRate  float64  `gorm:"type:decimal(12,2);not null" json:"per_km_rate"`
	THCPort    *float64 `gorm:"type:decimal(12,2)" json:"thc_port"`
}
