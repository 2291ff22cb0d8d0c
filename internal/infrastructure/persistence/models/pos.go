package models

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restopos/backend/internal/domain/pos"
)

// CompanyModel persists restaurant companies and branches.
type CompanyModel struct {
	BaseModel
	ParentID          *int64 `gorm:"index"`
	Name              string `gorm:"size:255;not null"`
	Phone             string `gorm:"size:64"`
	Email             string `gorm:"size:255"`
	Street            string `gorm:"size:255"`
	Street2           string `gorm:"size:255"`
	City              string `gorm:"size:128"`
	StateName         string `gorm:"size:128"`
	Zip               string `gorm:"size:32"`
	CountryCode       string `gorm:"size:8"`
	Timezone          string `gorm:"size:64"`
	IsRestaurant      bool   `gorm:"not null;default:false"`
	IsBranch          bool   `gorm:"not null;default:false"`
	OpeningTime       float64
	ClosingTime       float64
	DeliveryRadiusKm  int    `gorm:"not null;default:1"`
	Notes             string `gorm:"size:1024"`
	OrderTechTenantID string `gorm:"size:64;index;not null;default:''"`
	OrderTechBranchID string `gorm:"size:64;index;not null;default:''"`
}

// TableName returns the table name for CompanyModel
func (CompanyModel) TableName() string { return "companies" }

// ToDomain converts CompanyModel to a domain Company
func (m *CompanyModel) ToDomain() *pos.Company {
	return &pos.Company{
		ID:                m.ID,
		ParentID:          m.ParentID,
		Name:              m.Name,
		Phone:             m.Phone,
		Email:             m.Email,
		Street:            m.Street,
		Street2:           m.Street2,
		City:              m.City,
		StateName:         m.StateName,
		Zip:               m.Zip,
		CountryCode:       m.CountryCode,
		Timezone:          m.Timezone,
		IsRestaurant:      m.IsRestaurant,
		IsBranch:          m.IsBranch,
		OpeningTime:       m.OpeningTime,
		ClosingTime:       m.ClosingTime,
		DeliveryRadiusKm:  m.DeliveryRadiusKm,
		Notes:             m.Notes,
		OrderTechTenantID: m.OrderTechTenantID,
		OrderTechBranchID: m.OrderTechBranchID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain populates CompanyModel from a domain Company
func (m *CompanyModel) FromDomain(c *pos.Company) {
	m.ID = c.ID
	m.ParentID = c.ParentID
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Street = c.Street
	m.Street2 = c.Street2
	m.City = c.City
	m.StateName = c.StateName
	m.Zip = c.Zip
	m.CountryCode = c.CountryCode
	m.Timezone = c.Timezone
	m.IsRestaurant = c.IsRestaurant
	m.IsBranch = c.IsBranch
	m.OpeningTime = c.OpeningTime
	m.ClosingTime = c.ClosingTime
	m.DeliveryRadiusKm = c.DeliveryRadiusKm
	m.Notes = c.Notes
	m.OrderTechTenantID = c.OrderTechTenantID
	m.OrderTechBranchID = c.OrderTechBranchID
}

// CustomerModel persists customers.
type CustomerModel struct {
	BaseModel
	CompanyID           int64  `gorm:"index;not null"`
	Name                string `gorm:"size:255;not null"`
	Phone               string `gorm:"size:64"`
	Email               string `gorm:"size:255"`
	CustomerRank        int    `gorm:"not null;default:0"`
	OrderTechCustomerID string `gorm:"size:64;index;not null;default:''"`
}

// TableName returns the table name for CustomerModel
func (CustomerModel) TableName() string { return "customers" }

// ToDomain converts CustomerModel to a domain Customer
func (m *CustomerModel) ToDomain() *pos.Customer {
	return &pos.Customer{
		ID:                  m.ID,
		CompanyID:           m.CompanyID,
		Name:                m.Name,
		Phone:               m.Phone,
		Email:               m.Email,
		CustomerRank:        m.CustomerRank,
		OrderTechCustomerID: m.OrderTechCustomerID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain populates CustomerModel from a domain Customer
func (m *CustomerModel) FromDomain(c *pos.Customer) {
	m.ID = c.ID
	m.CompanyID = c.CompanyID
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.CustomerRank = c.CustomerRank
	m.OrderTechCustomerID = c.OrderTechCustomerID
}

// CategoryModel persists POS categories.
type CategoryModel struct {
	BaseModel
	CompanyID           int64  `gorm:"index;not null"`
	Name                string `gorm:"size:255;not null"`
	ArabicName          string `gorm:"size:255"`
	OrderTechCategoryID string `gorm:"size:64;index;not null;default:''"`
}

// TableName returns the table name for CategoryModel
func (CategoryModel) TableName() string { return "pos_categories" }

// ToDomain converts CategoryModel to a domain Category
func (m *CategoryModel) ToDomain() *pos.Category {
	return &pos.Category{
		ID:                  m.ID,
		CompanyID:           m.CompanyID,
		Name:                m.Name,
		ArabicName:          m.ArabicName,
		OrderTechCategoryID: m.OrderTechCategoryID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// AttributeGroupModel persists product attribute groups.
type AttributeGroupModel struct {
	BaseModel
	CompanyID        int64  `gorm:"index;not null"`
	Name             string `gorm:"size:255;not null"`
	ArabicName       string `gorm:"size:255"`
	IsAddons         bool   `gorm:"not null;default:false"`
	LimitMin         int    `gorm:"not null;default:0"`
	LimitMax         int    `gorm:"not null;default:0"`
	IsRequired       bool   `gorm:"not null;default:false"`
	DisplayType      string `gorm:"size:32"`
	OrderTechGroupID string `gorm:"size:64;index;not null;default:''"`
}

// TableName returns the table name for AttributeGroupModel
func (AttributeGroupModel) TableName() string { return "attribute_groups" }

// ToDomain converts AttributeGroupModel to a domain AttributeGroup
func (m *AttributeGroupModel) ToDomain() *pos.AttributeGroup {
	return &pos.AttributeGroup{
		ID:               m.ID,
		CompanyID:        m.CompanyID,
		Name:             m.Name,
		ArabicName:       m.ArabicName,
		IsAddons:         m.IsAddons,
		LimitMin:         m.LimitMin,
		LimitMax:         m.LimitMax,
		IsRequired:       m.IsRequired,
		DisplayType:      m.DisplayType,
		OrderTechGroupID: m.OrderTechGroupID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// AttributeValueModel persists attribute values.
type AttributeValueModel struct {
	BaseModel
	GroupID           int64           `gorm:"index;not null"`
	Name              string          `gorm:"size:255;not null"`
	ArabicName        string          `gorm:"size:255"`
	DefaultExtraPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OrderTechItemID   string          `gorm:"size:64;index;not null;default:''"`
}

// TableName returns the table name for AttributeValueModel
func (AttributeValueModel) TableName() string { return "attribute_values" }

// ToDomain converts AttributeValueModel to a domain AttributeValue
func (m *AttributeValueModel) ToDomain() *pos.AttributeValue {
	return &pos.AttributeValue{
		ID:                m.ID,
		GroupID:           m.GroupID,
		Name:              m.Name,
		ArabicName:        m.ArabicName,
		DefaultExtraPrice: m.DefaultExtraPrice,
		OrderTechItemID:   m.OrderTechItemID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ProductModel persists product templates.
type ProductModel struct {
	BaseModel
	CompanyID          int64           `gorm:"index;not null"`
	Name               string          `gorm:"size:255;not null"`
	ArabicName         string          `gorm:"size:255"`
	SKU                string          `gorm:"size:64"`
	ListPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HasImage           bool            `gorm:"not null;default:false"`
	AvailableInPOS     bool            `gorm:"not null;default:false"`
	OrderTechProductID string          `gorm:"size:64;index;not null;default:''"`

	Categories     []ProductCategoryModel      `gorm:"foreignKey:ProductID"`
	AttributeLines []ProductAttributeLineModel `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for ProductModel
func (ProductModel) TableName() string { return "products" }

// ProductCategoryModel links products to POS categories.
type ProductCategoryModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	ProductID  int64 `gorm:"index;not null"`
	CategoryID int64 `gorm:"index;not null"`
	Sequence   int   `gorm:"not null;default:0"`
}

// TableName returns the table name for ProductCategoryModel
func (ProductCategoryModel) TableName() string { return "product_categories" }

// ProductAttributeLineModel links a product to an attribute group.
type ProductAttributeLineModel struct {
	ID        int64                            `gorm:"primaryKey;autoIncrement"`
	ProductID int64                            `gorm:"index;not null"`
	GroupID   int64                            `gorm:"index;not null"`
	Values    []ProductAttributeLineValueModel `gorm:"foreignKey:LineID"`
}

// TableName returns the table name for ProductAttributeLineModel
func (ProductAttributeLineModel) TableName() string { return "product_attribute_lines" }

// ProductAttributeLineValueModel links an attribute line to an offered value.
type ProductAttributeLineValueModel struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	LineID  int64 `gorm:"index;not null"`
	ValueID int64 `gorm:"index;not null"`
}

// TableName returns the table name for ProductAttributeLineValueModel
func (ProductAttributeLineValueModel) TableName() string { return "product_attribute_line_values" }

// ToDomain converts ProductModel with its associations to a domain Product
func (m *ProductModel) ToDomain() *pos.Product {
	p := &pos.Product{
		ID:                 m.ID,
		CompanyID:          m.CompanyID,
		Name:               m.Name,
		ArabicName:         m.ArabicName,
		SKU:                m.SKU,
		ListPrice:          m.ListPrice,
		HasImage:           m.HasImage,
		AvailableInPOS:     m.AvailableInPOS,
		OrderTechProductID: m.OrderTechProductID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	for _, c := range m.Categories {
		p.CategoryIDs = append(p.CategoryIDs, c.CategoryID)
	}
	for _, line := range m.AttributeLines {
		dl := pos.AttributeLine{GroupID: line.GroupID}
		for _, v := range line.Values {
			dl.ValueIDs = append(dl.ValueIDs, v.ValueID)
		}
		p.AttributeLines = append(p.AttributeLines, dl)
	}
	return p
}

// SessionModel persists POS sessions.
type SessionModel struct {
	BaseModel
	CompanyID         int64  `gorm:"index;not null"`
	State             string `gorm:"size:16;not null;default:'opened'"`
	ResponsibleUserID int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for SessionModel
func (SessionModel) TableName() string { return "pos_sessions" }

// ToDomain converts SessionModel to a domain Session
func (m *SessionModel) ToDomain() *pos.Session {
	return &pos.Session{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		State:             m.State,
		ResponsibleUserID: m.ResponsibleUserID,
		CreatedAt:         m.CreatedAt,
	}
}

// OrderModel persists POS orders.
type OrderModel struct {
	BaseModel
	SessionID        int64           `gorm:"index;not null"`
	CompanyID        int64           `gorm:"index;not null"`
	CustomerID       int64           `gorm:"index"`
	Name             string          `gorm:"size:64;not null"`
	UUID             uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	SequenceNumber   int             `gorm:"not null;default:0"`
	TrackingNumber   string          `gorm:"size:32"`
	ReceiptRef       string          `gorm:"size:64"`
	State            string          `gorm:"size:16;not null;default:'draft'"`
	AmountTotal      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	// Uniqueness of non-empty remote order ids is enforced by a partial
	// index in the migration, local orders all carry ''.
	OrderTechOrderID string `gorm:"size:64;index;not null;default:''"`

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for OrderModel
func (OrderModel) TableName() string { return "pos_orders" }

// OrderLineModel persists POS order lines.
type OrderLineModel struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	OrderID           int64           `gorm:"index;not null"`
	ProductID         int64           `gorm:"index;not null"`
	FullProductName   string          `gorm:"size:255"`
	Qty               float64         `gorm:"not null;default:1"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ExtraPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AttributeValueIDs string          `gorm:"size:1024"`
	UUID              uuid.UUID       `gorm:"type:uuid"`
}

// TableName returns the table name for OrderLineModel
func (OrderLineModel) TableName() string { return "pos_order_lines" }

// EncodeIDs serializes attribute value ids as a comma-separated list.
func EncodeIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

// DecodeIDs parses a comma-separated id list.
func DecodeIDs(s string) []int64 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ToDomain converts OrderModel with its lines to a domain Order
func (m *OrderModel) ToDomain() *pos.Order {
	o := &pos.Order{
		ID:               m.ID,
		SessionID:        m.SessionID,
		CompanyID:        m.CompanyID,
		CustomerID:       m.CustomerID,
		Name:             m.Name,
		UUID:             m.UUID,
		SequenceNumber:   m.SequenceNumber,
		TrackingNumber:   m.TrackingNumber,
		ReceiptRef:       m.ReceiptRef,
		State:            m.State,
		AmountTotal:      m.AmountTotal,
		OrderTechOrderID: m.OrderTechOrderID,
		CreatedAt:        m.CreatedAt,
	}
	for _, l := range m.Lines {
		o.Lines = append(o.Lines, pos.OrderLine{
			ID:                l.ID,
			ProductID:         l.ProductID,
			FullProductName:   l.FullProductName,
			Qty:               l.Qty,
			UnitPrice:         l.UnitPrice,
			ExtraPrice:        l.ExtraPrice,
			Subtotal:          l.Subtotal,
			AttributeValueIDs: DecodeIDs(l.AttributeValueIDs),
			UUID:              l.UUID,
		})
	}
	return o
}

// FromDomain populates OrderModel and its lines from a domain Order
func (m *OrderModel) FromDomain(o *pos.Order) {
	m.ID = o.ID
	m.SessionID = o.SessionID
	m.CompanyID = o.CompanyID
	m.CustomerID = o.CustomerID
	m.Name = o.Name
	m.UUID = o.UUID
	m.SequenceNumber = o.SequenceNumber
	m.TrackingNumber = o.TrackingNumber
	m.ReceiptRef = o.ReceiptRef
	m.State = o.State
	m.AmountTotal = o.AmountTotal
	m.OrderTechOrderID = o.OrderTechOrderID
	m.Lines = m.Lines[:0]
	for _, l := range o.Lines {
		m.Lines = append(m.Lines, OrderLineModel{
			ID:                l.ID,
			OrderID:           o.ID,
			ProductID:         l.ProductID,
			FullProductName:   l.FullProductName,
			Qty:               l.Qty,
			UnitPrice:         l.UnitPrice,
			ExtraPrice:        l.ExtraPrice,
			Subtotal:          l.Subtotal,
			AttributeValueIDs: EncodeIDs(l.AttributeValueIDs),
			UUID:              l.UUID,
		})
	}
}

// PreparationStageModel persists kitchen preparation stages.
type PreparationStageModel struct {
	BaseModel
	Name     string `gorm:"size:128;not null"`
	Sequence int    `gorm:"not null;default:0"`
}

// TableName returns the table name for PreparationStageModel
func (PreparationStageModel) TableName() string { return "preparation_stages" }

// ToDomain converts PreparationStageModel to a domain PreparationStage
func (m *PreparationStageModel) ToDomain() *pos.PreparationStage {
	return &pos.PreparationStage{
		ID:       m.ID,
		Name:     m.Name,
		Sequence: m.Sequence,
	}
}
