package sqlite

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// supplierModel fila de la tabla suppliers.
type supplierModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Name         string    `gorm:"size:100;not null"`
	ContactEmail string    `gorm:"size:255;not null;uniqueIndex:uq_suppliers_contact_email"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (supplierModel) TableName() string { return "suppliers" }

// productModel fila de la tabla products. Sin tags default: GORM reemplazaría false/0 por el default.
type productModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	Name        string          `gorm:"size:100;not null"`
	Description string          `gorm:"type:text;not null"`
	InStock     bool            `gorm:"not null"`
	Quantity    int             `gorm:"not null;check:chk_products_quantity,quantity >= 0"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_products_price,price > 0"`
	CreatedAt   time.Time       `gorm:"not null"`
	SupplierID  string          `gorm:"type:varchar(36);not null;index"`

	Supplier *supplierModel `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

func (productModel) TableName() string { return "products" }

// stockLogModel fila de la tabla stock_logs.
type stockLogModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `gorm:"type:varchar(36);not null;index:idx_stock_logs_product_logged_at,priority:1"`
	Change    int       `gorm:"not null"`
	Reason    string    `gorm:"size:500;not null"`
	LoggedAt  time.Time `gorm:"not null;index:idx_stock_logs_product_logged_at,priority:2"`

	Product *productModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (stockLogModel) TableName() string { return "stock_logs" }

func toSupplierModel(s *entity.Supplier) *supplierModel {
	return &supplierModel{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail, CreatedAt: s.CreatedAt}
}

func (m *supplierModel) toEntity() *entity.Supplier {
	return &entity.Supplier{ID: m.ID, Name: m.Name, ContactEmail: m.ContactEmail, CreatedAt: m.CreatedAt}
}

func toProductModel(p *entity.Product) *productModel {
	return &productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		InStock:     p.InStock,
		Quantity:    p.Quantity,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		SupplierID:  p.SupplierID,
	}
}

func (m *productModel) toEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		InStock:     m.InStock,
		Quantity:    m.Quantity,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		SupplierID:  m.SupplierID,
	}
}

func toStockLogModel(l *entity.StockLog) *stockLogModel {
	return &stockLogModel{ID: l.ID, ProductID: l.ProductID, Change: l.Change, Reason: l.Reason, LoggedAt: l.LoggedAt}
}

func (m *stockLogModel) toEntity() *entity.StockLog {
	return &entity.StockLog{ID: m.ID, ProductID: m.ProductID, Change: m.Change, Reason: m.Reason, LoggedAt: m.LoggedAt}
}
