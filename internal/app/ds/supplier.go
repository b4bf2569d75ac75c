package ds

// 2. Таблица поставщиков с наценками
type Supplier struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(150);unique;not null" json:"name"`
	ContactPerson string  `gorm:"type:varchar(100)" json:"contact_person"`
	ContactEmail  string  `gorm:"type:varchar(100)" json:"contact_email"`
	ContactPhone  string  `gorm:"type:varchar(30)" json:"contact_phone"`
	MarkupPercent float64 `gorm:"type:decimal(6,2);default:0" json:"markup_percent"`
	MarkupFixed   float64 `gorm:"type:decimal(12,2);default:0" json:"markup_fixed"`
	TemplateType  string  `gorm:"type:varchar(50)" json:"template_type"` // Тип шаблона для парсинга файлов
}

// Скидка пользователя у конкретного поставщика
type Discount struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"not null;index;uniqueIndex:idx_user_supplier" json:"user_id"`
	SupplierID      uint    `gorm:"not null;index;uniqueIndex:idx_user_supplier" json:"supplier_id"`
	DiscountPercent float64 `gorm:"type:decimal(6,2);default:0" json:"discount_percent"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}
