package dealmodel

import "time"

// PerformanceAllocation 매출 1건당 배분 행 (4 슬롯 고정).
// 슬롯 단위 upsert가 아니라 행 전체를 한 번에 갈아끼운다.
type PerformanceAllocation struct {
	PerformanceID uint64 `gorm:"column:performance_id;primaryKey"`

	StaffID1          *string `gorm:"column:staff_id1"`
	BuyerWeight1      float64 `gorm:"column:buyer_weight1"`
	SellerWeight1     float64 `gorm:"column:seller_weight1"`
	BuyerAmount1      int64   `gorm:"column:buyer_amount1"`
	SellerAmount1     int64   `gorm:"column:seller_amount1"`
	InvolvementSales1 int64   `gorm:"column:involvement_sales1"`

	StaffID2          *string `gorm:"column:staff_id2"`
	BuyerWeight2      float64 `gorm:"column:buyer_weight2"`
	SellerWeight2     float64 `gorm:"column:seller_weight2"`
	BuyerAmount2      int64   `gorm:"column:buyer_amount2"`
	SellerAmount2     int64   `gorm:"column:seller_amount2"`
	InvolvementSales2 int64   `gorm:"column:involvement_sales2"`

	StaffID3          *string `gorm:"column:staff_id3"`
	BuyerWeight3      float64 `gorm:"column:buyer_weight3"`
	SellerWeight3     float64 `gorm:"column:seller_weight3"`
	BuyerAmount3      int64   `gorm:"column:buyer_amount3"`
	SellerAmount3     int64   `gorm:"column:seller_amount3"`
	InvolvementSales3 int64   `gorm:"column:involvement_sales3"`

	StaffID4          *string `gorm:"column:staff_id4"`
	BuyerWeight4      float64 `gorm:"column:buyer_weight4"`
	SellerWeight4     float64 `gorm:"column:seller_weight4"`
	BuyerAmount4      int64   `gorm:"column:buyer_amount4"`
	SellerAmount4     int64   `gorm:"column:seller_amount4"`
	InvolvementSales4 int64   `gorm:"column:involvement_sales4"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PerformanceAllocation) TableName() string { return "performance_allocations" }
