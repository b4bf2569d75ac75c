package ds

import "time"

// TransportType - тип перевозки
type TransportType string

const (
	TransportAuto       TransportType = "auto"
	TransportAir        TransportType = "air"
	TransportRail       TransportType = "rail"
	TransportSea        TransportType = "sea"
	TransportMultimodal TransportType = "multimodal"
)

// 3. Таблица тарифов поставщиков
type Tariff struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	SupplierID      uint          `gorm:"not null;index" json:"supplier_id"`
	TransportType   TransportType `gorm:"type:varchar(20);not null;index" json:"transport_type"`
	Basis           string        `gorm:"type:varchar(10);not null" json:"basis"` // Инкотермс: EXW, FOB, DDP и т.д.
	OriginCountry   string        `gorm:"type:varchar(100)" json:"origin_country"`
	OriginCity      string        `gorm:"type:varchar(100);index" json:"origin_city"`
	BorderPoint     string        `gorm:"type:varchar(100)" json:"border_point"`
	DestCountry     string        `gorm:"type:varchar(100)" json:"destination_country"`
	DestCity        string        `gorm:"type:varchar(100);index" json:"destination_city"`
	VehicleType     string        `gorm:"type:varchar(50)" json:"vehicle_type"`
	PriceRub        *float64      `gorm:"type:decimal(14,2)" json:"price_rub"`
	PriceUsd        *float64      `gorm:"type:decimal(14,2)" json:"price_usd"`
	ValidityDate    *time.Time    `gorm:"type:date" json:"validity_date"`
	TransitTimeDays *int          `json:"transit_time_days"`
	SourceFile      string        `gorm:"type:varchar(255)" json:"source_file"`
	CreatedByUserID *uint         `gorm:"index" json:"created_by_user_id"`
	CreatedAt       time.Time     `gorm:"not null" json:"created_at"`

	// Составляющие для ЖД/морских/мультимодальных перевозок
	TransitPort          string   `gorm:"type:varchar(100)" json:"transit_port"`
	DepartureStation     string   `gorm:"type:varchar(100)" json:"departure_station"`
	ArrivalStation       string   `gorm:"type:varchar(100)" json:"arrival_station"`
	RailTariffRub        *float64 `gorm:"type:decimal(14,2)" json:"rail_tariff_rub"`
	CbxCost              *float64 `gorm:"type:decimal(14,2)" json:"cbx_cost"`                // Стоимость СВХ
	TerminalHandlingCost *float64 `gorm:"type:decimal(14,2)" json:"terminal_handling_cost"` // Терминальная обработка
	AutoPickupCost       *float64 `gorm:"type:decimal(14,2)" json:"auto_pickup_cost"`       // Автовывоз
	SecurityCost         *float64 `gorm:"type:decimal(14,2)" json:"security_cost"`          // Охрана
	PrecarriageCost      *float64 `gorm:"type:decimal(14,2)" json:"precarriage_cost"`

	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// 4. Архив тарифов. При замене тарифа новым старая строка переносится сюда
type TariffArchive struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	OriginalTariffID uint          `gorm:"not null;index" json:"original_tariff_id"`
	SupplierID       uint          `gorm:"not null;index" json:"supplier_id"`
	TransportType    TransportType `gorm:"type:varchar(20);not null;index" json:"transport_type"`
	Basis            string        `gorm:"type:varchar(10);not null" json:"basis"`
	OriginCountry    string        `gorm:"type:varchar(100)" json:"origin_country"`
	OriginCity       string        `gorm:"type:varchar(100)" json:"origin_city"`
	BorderPoint      string        `gorm:"type:varchar(100)" json:"border_point"`
	DestCountry      string        `gorm:"type:varchar(100)" json:"destination_country"`
	DestCity         string        `gorm:"type:varchar(100)" json:"destination_city"`
	VehicleType      string        `gorm:"type:varchar(50)" json:"vehicle_type"`
	PriceRub         *float64      `gorm:"type:decimal(14,2)" json:"price_rub"`
	PriceUsd         *float64      `gorm:"type:decimal(14,2)" json:"price_usd"`
	ValidityDate     *time.Time    `gorm:"type:date" json:"validity_date"`
	TransitTimeDays  *int          `json:"transit_time_days"`
	SourceFile       string        `gorm:"type:varchar(255)" json:"source_file"`

	TransitPort          string   `gorm:"type:varchar(100)" json:"transit_port"`
	DepartureStation     string   `gorm:"type:varchar(100)" json:"departure_station"`
	ArrivalStation       string   `gorm:"type:varchar(100)" json:"arrival_station"`
	RailTariffRub        *float64 `gorm:"type:decimal(14,2)" json:"rail_tariff_rub"`
	CbxCost              *float64 `gorm:"type:decimal(14,2)" json:"cbx_cost"`
	TerminalHandlingCost *float64 `gorm:"type:decimal(14,2)" json:"terminal_handling_cost"`
	AutoPickupCost       *float64 `gorm:"type:decimal(14,2)" json:"auto_pickup_cost"`
	SecurityCost         *float64 `gorm:"type:decimal(14,2)" json:"security_cost"`
	PrecarriageCost      *float64 `gorm:"type:decimal(14,2)" json:"precarriage_cost"`

	ArchivedAt      time.Time `gorm:"not null" json:"archived_at"`
	ArchiveReason   string    `gorm:"type:varchar(255)" json:"archive_reason"`
	IsActive        bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedByUserID *uint     `gorm:"index" json:"created_by_user_id"`
}
