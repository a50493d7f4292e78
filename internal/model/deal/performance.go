package dealmodel

import "time"

// Performance 매출(거래) 1건. 금액 단위: 원.
type Performance struct {
	PerformanceID uint64     `gorm:"column:performance_id;primaryKey"`
	ListingID     *int64     `gorm:"column:listing_id"`
	DealType      string     `gorm:"column:deal_type"` // 매매 | 월세
	ListingTitle  string     `gorm:"column:listing_title"`
	Province      string     `gorm:"column:province"`
	City          string     `gorm:"column:city"`
	District      string     `gorm:"column:district"`
	DetailAddress string     `gorm:"column:detail_address"`
	Affiliation   string     `gorm:"column:affiliation"`
	ContractDate  *time.Time `gorm:"column:contract_date"`

	SalePrice    int64 `gorm:"column:sale_price"`
	DepositPrice int64 `gorm:"column:deposit_price"`
	MonthlyRent  int64 `gorm:"column:monthly_rent"`
	PremiumPrice int64 `gorm:"column:premium_price"`
	Expense      int64 `gorm:"column:expense"`

	DownPayment     int64      `gorm:"column:down_payment"`
	InterimPayment1 int64      `gorm:"column:interim_payment1"`
	InterimPayment2 int64      `gorm:"column:interim_payment2"`
	InterimPayment3 int64      `gorm:"column:interim_payment3"`
	Balance         int64      `gorm:"column:balance"`
	BalanceDate     *time.Time `gorm:"column:balance_date"` // 잔금일 = 정산 귀속월 기준

	BuyerFee  int64 `gorm:"column:buyer_fee"`
	SellerFee int64 `gorm:"column:seller_fee"`

	SellerDistributionRate float64 `gorm:"column:seller_distribution_rate"`
	SellerPerformance      int64   `gorm:"column:seller_performance"`
	BuyerPerformance       int64   `gorm:"column:buyer_performance"`

	SpecialContract string    `gorm:"column:special_contract"`
	Status          bool      `gorm:"column:status"` // 확정 여부
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (Performance) TableName() string { return "performance" }
