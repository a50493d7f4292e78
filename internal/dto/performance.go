package dto

import "time"

// AllocationSlot 배분 슬롯 입력. staff_id가 비어 있으면 미배정.
type AllocationSlot struct {
	StaffID      string `json:"staff_id"`
	BuyerWeight  Pct    `json:"buyer_weight"`
	SellerWeight Pct    `json:"seller_weight"`
}

// SavePerformanceReq 매출 저장 요청 (폼 1벌)
type SavePerformanceReq struct {
	ListingID     *int64 `json:"listing_id"`
	DealType      string `json:"deal_type" binding:"required,dealtype"`
	ListingTitle  string `json:"listing_title"`
	Province      string `json:"province"`
	City          string `json:"city"`
	District      string `json:"district"`
	DetailAddress string `json:"detail_address"`
	Affiliation   string `json:"affiliation"`
	ContractDate  string `json:"contract_date"`

	SalePrice    Won `json:"sale_price"`
	DepositPrice Won `json:"deposit_price"`
	MonthlyRent  Won `json:"monthly_rent"`
	PremiumPrice Won `json:"premium_price"`
	Expense      Won `json:"expense"`

	// 계약금을 비워 보내면 보증금의 10%로 자동 산출한다
	DownPayment     *Won   `json:"down_payment"`
	InterimPayment1 Won    `json:"interim_payment1"`
	InterimPayment2 Won    `json:"interim_payment2"`
	InterimPayment3 Won    `json:"interim_payment3"`
	BalanceDate     string `json:"balance_date"`

	SellerDistributionRate Pct    `json:"seller_distribution_rate"`
	SplitPolicy            string `json:"split_policy"` // simple | expense_aware(기본)

	SpecialContract string `json:"special_contract"`
	Operator        string `json:"operator"`

	Allocations []AllocationSlot `json:"allocations" binding:"max=4"`
}

// AllocationSlotVO 저장/미리보기 결과 슬롯
type AllocationSlotVO struct {
	StaffID          string  `json:"staff_id"`
	StaffName        string  `json:"staff_name,omitempty"`
	BuyerWeight      float64 `json:"buyer_weight"`
	SellerWeight     float64 `json:"seller_weight"`
	BuyerAmount      int64   `json:"buyer_amount"`
	SellerAmount     int64   `json:"seller_amount"`
	InvolvementSales int64   `json:"involvement_sales"`
}

// PerformanceVO 매출 조회 응답
type PerformanceVO struct {
	PerformanceID uint64     `json:"performance_id,string"`
	ListingID     *int64     `json:"listing_id,omitempty"`
	DealType      string     `json:"deal_type"`
	ListingTitle  string     `json:"listing_title"`
	Affiliation   string     `json:"affiliation"`
	ContractDate  *time.Time `json:"contract_date,omitempty"`
	BalanceDate   *time.Time `json:"balance_date,omitempty"`

	SalePrice    int64 `json:"sale_price"`
	DepositPrice int64 `json:"deposit_price"`
	MonthlyRent  int64 `json:"monthly_rent"`
	PremiumPrice int64 `json:"premium_price"`
	Expense      int64 `json:"expense"`

	DownPayment     int64 `json:"down_payment"`
	InterimPayment1 int64 `json:"interim_payment1"`
	InterimPayment2 int64 `json:"interim_payment2"`
	InterimPayment3 int64 `json:"interim_payment3"`
	Balance         int64 `json:"balance"`

	BuyerFee  int64 `json:"buyer_fee"`
	SellerFee int64 `json:"seller_fee"`

	SellerDistributionRate float64 `json:"seller_distribution_rate"`
	SellerPerformance      int64   `json:"seller_performance"`
	BuyerPerformance       int64   `json:"buyer_performance"`

	// 표시용 콤마 문자열 (계산에는 쓰지 않는다)
	BuyerFeeText          string `json:"buyer_fee_text"`
	SellerFeeText         string `json:"seller_fee_text"`
	BuyerPerformanceText  string `json:"buyer_performance_text"`
	SellerPerformanceText string `json:"seller_performance_text"`

	Status      bool               `json:"status"`
	Allocations []AllocationSlotVO `json:"allocations"`
	CreatedAt   time.Time          `json:"created_at"`
}

// SavePerformanceResp 저장 응답
type SavePerformanceResp struct {
	PerformanceID uint64             `json:"performance_id,string"`
	BuyerFee      int64              `json:"buyer_fee"`
	SellerFee     int64              `json:"seller_fee"`
	BuyerPerf     int64              `json:"buyer_performance"`
	SellerPerf    int64              `json:"seller_performance"`
	DownPayment   int64              `json:"down_payment"`
	Balance       int64              `json:"balance"`
	Allocations   []AllocationSlotVO `json:"allocations"`
}

// PreviewReq 실시간 재계산 요청. 아무것도 저장하지 않는다.
type PreviewReq struct {
	DealType     string `json:"deal_type" binding:"required"`
	SalePrice    Won    `json:"sale_price"`
	DepositPrice Won    `json:"deposit_price"`
	MonthlyRent  Won    `json:"monthly_rent"`
	Expense      Won    `json:"expense"`

	SellerDistributionRate Pct    `json:"seller_distribution_rate"`
	SplitPolicy            string `json:"split_policy"`

	Allocations []AllocationSlot `json:"allocations" binding:"max=4"`
}

// PreviewResp 실시간 재계산 응답.
// preview 값은 참고용이며 저장 시 확정 금액과 다를 수 있다.
type PreviewResp struct {
	BuyerFee   int64 `json:"buyer_fee"`
	SellerFee  int64 `json:"seller_fee"`
	BuyerPerf  int64 `json:"buyer_performance"`
	SellerPerf int64 `json:"seller_performance"`

	WeightsOK  bool    `json:"weights_ok"`
	WeightsMsg string  `json:"weights_msg,omitempty"`
	Previews   []int64 `json:"slot_previews"`
}
