package dto

import (
	"time"

	"veres-tariff/internal/app/role"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID                uint      `json:"id"`
	Username          string    `json:"username"`
	Role              role.Role `json:"role"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	CompanyName       string    `json:"company_name"`
	ResponsiblePerson string    `json:"responsible_person"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username          string    `json:"username" binding:"required,min=3,max=50"`
	Password          string    `json:"password" binding:"required,min=6"`
	Role              role.Role `json:"role"` // игнорируется при самостоятельной регистрации
	FullName          string    `json:"full_name"`
	Email             string    `json:"email" binding:"omitempty,email"`
	Phone             string    `json:"phone"`
	CompanyName       string    `json:"company_name"`
	ResponsiblePerson string    `json:"responsible_person"`
}

type UpdateUserRequest struct {
	Password          string     `json:"password" binding:"omitempty,min=6"`
	Role              *role.Role `json:"role"`
	FullName          *string    `json:"full_name"`
	Email             *string    `json:"email" binding:"omitempty,email"`
	Phone             *string    `json:"phone"`
	CompanyName       *string    `json:"company_name"`
	ResponsiblePerson *string    `json:"responsible_person"`
	IsActive          *bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ============ Поставщики (Suppliers) ============

type SupplierResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person"`
	ContactEmail  string  `json:"contact_email"`
	ContactPhone  string  `json:"contact_phone"`
	MarkupPercent float64 `json:"markup_percent"`
	MarkupFixed   float64 `json:"markup_fixed"`
	TemplateType  string  `json:"template_type"`
}

type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required,max=150"`
	ContactPerson string  `json:"contact_person"`
	ContactEmail  string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone  string  `json:"contact_phone"`
	MarkupPercent float64 `json:"markup_percent" binding:"gte=0,lte=100"`
	MarkupFixed   float64 `json:"markup_fixed" binding:"gte=0"`
	TemplateType  string  `json:"template_type"`
}

type UpdateSupplierRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=150"`
	ContactPerson *string  `json:"contact_person"`
	ContactEmail  *string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone  *string  `json:"contact_phone"`
	TemplateType  *string  `json:"template_type"`
}

// Наценка поставщика задаётся отдельным запросом
type SetMarkupRequest struct {
	MarkupPercent float64 `json:"markup_percent" binding:"gte=0,lte=100"`
	MarkupFixed   float64 `json:"markup_fixed" binding:"gte=0"`
}

// ============ Скидки (Discounts) ============

type DiscountResponse struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	SupplierID      uint    `json:"supplier_id"`
	DiscountPercent float64 `json:"discount_percent"`
}

type SetDiscountRequest struct {
	UserID          uint    `json:"user_id" binding:"required"`
	SupplierID      uint    `json:"supplier_id" binding:"required"`
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`
}

type UpdateDiscountRequest struct {
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`
}

// ============ Тарифы (Tariffs) ============

type TariffRequest struct {
	SupplierID      uint     `json:"supplier_id" binding:"required"`
	TransportType   string   `json:"transport_type" binding:"required,oneof=auto air rail sea multimodal"`
	Basis           string   `json:"basis" binding:"required"`
	OriginCountry   string   `json:"origin_country"`
	OriginCity      string   `json:"origin_city"`
	BorderPoint     string   `json:"border_point"`
	DestCountry     string   `json:"destination_country"`
	DestCity        string   `json:"destination_city"`
	VehicleType     string   `json:"vehicle_type"`
	PriceRub        *float64 `json:"price_rub"`
	PriceUsd        *float64 `json:"price_usd"`
	ValidityDate    *string  `json:"validity_date"` // формат 2006-01-02
	TransitTimeDays *int     `json:"transit_time_days"`

	TransitPort          string   `json:"transit_port"`
	DepartureStation     string   `json:"departure_station"`
	ArrivalStation       string   `json:"arrival_station"`
	RailTariffRub        *float64 `json:"rail_tariff_rub"`
	CbxCost              *float64 `json:"cbx_cost"`
	TerminalHandlingCost *float64 `json:"terminal_handling_cost"`
	AutoPickupCost       *float64 `json:"auto_pickup_cost"`
	SecurityCost         *float64 `json:"security_cost"`
	PrecarriageCost      *float64 `json:"precarriage_cost"`
}

// ============ Расчёт (Calculate) ============

type CalculateRequest struct {
	TransportType     string   `json:"transport_type" binding:"required,oneof=auto air rail sea multimodal"`
	Basis             string   `json:"basis" binding:"required"`
	OriginCountry     string   `json:"origin_country"`
	OriginCity        string   `json:"origin_city"`
	DestCountry       string   `json:"destination_country"`
	DestCity          string   `json:"destination_city"`
	VehicleType       string   `json:"vehicle_type"`
	CargoName         string   `json:"cargo_name"`
	WeightKg          *float64 `json:"weight_kg"`
	VolumeM3          *float64 `json:"volume_m3"`
	HSCode            string   `json:"hs_code"`
	BorderPoint       string   `json:"border_point"`
	CustomsPoint      string   `json:"customs_point"`
	ReadyDate         string   `json:"ready_date"`
	ShipmentsCount    *int     `json:"shipments_count"`
	SpecialConditions string   `json:"special_conditions"`
	Suppliers         []uint   `json:"suppliers"`
}

type CalculateMassRequest struct {
	Requests []CalculateRequest `json:"requests" binding:"required,dive"`
}

type CalculateOption struct {
	SupplierID      uint     `json:"supplier_id"`
	SupplierName    string   `json:"supplier_name"`
	PriceRub        float64  `json:"price_rub"`
	PriceUsd        *float64 `json:"price_usd"`
	MarkupPercent   float64  `json:"markup_percent"`
	MarkupFixed     float64  `json:"markup_fixed"`
	DiscountPercent float64  `json:"discount_percent"`
	FinalPriceRub   *float64 `json:"final_price_rub"`
	PriceOnRequest  bool     `json:"price_on_request,omitempty"`
	ValidityDate    *string  `json:"validity_date"`
	BorderPoint     string   `json:"border_point,omitempty"`
	SVHName         string   `json:"svh_name,omitempty"`
	ArrivalStation  string   `json:"arrival_station,omitempty"`
	TransitTimeDays *int     `json:"transit_time_days"`

	// Детализация составляющих
	RailTariffRub        *float64 `json:"rail_tariff_rub,omitempty"`
	CbxCost              float64  `json:"cbx_cost,omitempty"`
	AutoPickupCost       float64  `json:"auto_pickup_cost,omitempty"`
	TerminalHandlingCost float64  `json:"terminal_handling_cost,omitempty"`
	SecurityCost         *float64 `json:"security_cost,omitempty"`
	PrecarriageCost      float64  `json:"precarriage_cost,omitempty"`
}

// ============ Заявки и КП (Requests, Offers) ============

type RequestResponse struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"user_id"`
	RequestData CalculateRequest `json:"request_data"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type SaveRequestRequest struct {
	RequestData CalculateRequest `json:"request_data" binding:"required"`
}

type GenerateOfferRequest struct {
	RequestID uint `json:"request_id" binding:"required"`
}

type OfferResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	RequestID *uint     `json:"request_id"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ============ Курсы валют (Currency) ============

type CurrencyRateResponse struct {
	Code      string    `json:"code"`
	Rate      float64   `json:"rate"`
	FetchedAt time.Time `json:"fetched_at"`
}

type ConvertResponse struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

// ============ Статистика (Stats) ============

type StatsResponse struct {
	UsersTotal     int64            `json:"users_total"`
	SuppliersTotal int64            `json:"suppliers_total"`
	TariffsTotal   int64            `json:"tariffs_total"`
	RequestsTotal  int64            `json:"requests_total"`
	OffersTotal    int64            `json:"offers_total"`
	UsersByRole    map[string]int64 `json:"users_by_role"`

	// Динамика обращений
	RequestsLastWeek  int64 `json:"requests_last_week"`
	RequestsLastMonth int64 `json:"requests_last_month"`
	OffersLastMonth   int64 `json:"offers_last_month"`
}

// RequestHistoryUser - пользователь в истории обращений с количеством заявок
type RequestHistoryUser struct {
	UserID        uint      `json:"user_id"`
	Username      string    `json:"username"`
	FullName      string    `json:"full_name"`
	Role          role.Role `json:"role"`
	RequestsCount int64     `json:"requests_count"`
	LastRequestAt time.Time `json:"last_request_at"`
}

// ============ Извлечение текста и LLM-парсер ============

type ExtractedFile struct {
	Filename string `json:"filename"`
	Success  bool   `json:"success"`
	Text     string `json:"text,omitempty"`
	Error    string `json:"error,omitempty"`
}

type LLMParseRequest struct {
	Text         string `json:"text" binding:"required"`
	TemplateType string `json:"template_type"`
}

type LLMParseResponse struct {
	Model   string          `json:"model"`
	Content string          `json:"content"`
	Tariffs []TariffRequest `json:"tariffs,omitempty"`
}

// ============ Автозагрузка тарифов ============

type AutoTariffResult struct {
	Filename      string `json:"filename"`
	Success       bool   `json:"success"`
	TariffsLoaded int    `json:"tariffs_loaded"`
	Error         string `json:"error,omitempty"`
}

// ExtractedTariffFile - распознанные тарифы одного файла без сохранения
type ExtractedTariffFile struct {
	Filename string          `json:"filename"`
	Success  bool            `json:"success"`
	Tariffs  []TariffRequest `json:"tariffs,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type SaveTariffsRequest struct {
	Tariffs []TariffRequest `json:"tariffs" binding:"required,dive"`
}
