package commission

import "testing"

func TestAllocateSingleStaff(t *testing.T) {
	split := PerformanceSplit{BuyerPerformance: 640_000, SellerPerformance: 240_000}
	rows := []AllocationRow{
		{StaffID: "a3f1", BuyerWeightPct: 100, SellerWeightPct: 100},
		{}, {}, {},
	}
	Allocate(split, rows)
	if rows[0].BuyerAmount != 640_000 || rows[0].SellerAmount != 240_000 {
		t.Errorf("unexpected amounts: %+v", rows[0])
	}
	if rows[0].InvolvementSales != 880_000 {
		t.Errorf("involvement sales = %d, want 880000", rows[0].InvolvementSales)
	}
	if ok, _ := ValidateWeights(rows); !ok {
		t.Error("weights should validate")
	}
}

func TestAllocateUnassignedSlotForcedToZero(t *testing.T) {
	split := PerformanceSplit{BuyerPerformance: 500_000, SellerPerformance: 500_000}
	rows := []AllocationRow{
		{StaffID: "a3f1", BuyerWeightPct: 100, SellerWeightPct: 100},
		// 직원 미배정인데 가중치가 남아 있는 슬롯: 값 자체가 폐기되어야 한다
		{StaffID: "", BuyerWeightPct: 40, SellerWeightPct: 60, InvolvementSales: 123},
	}
	Allocate(split, rows)
	r := rows[1]
	if r.BuyerWeightPct != 0 || r.SellerWeightPct != 0 {
		t.Errorf("weights not discarded: %+v", r)
	}
	if r.BuyerAmount != 0 || r.SellerAmount != 0 || r.InvolvementSales != 0 {
		t.Errorf("amounts not zeroed: %+v", r)
	}
}

func TestAllocateSplitsAcrossStaff(t *testing.T) {
	split := PerformanceSplit{BuyerPerformance: 1_000_001, SellerPerformance: 300_000}
	rows := []AllocationRow{
		{StaffID: "s1", BuyerWeightPct: 50, SellerWeightPct: 70},
		{StaffID: "s2", BuyerWeightPct: 50, SellerWeightPct: 30},
	}
	Allocate(split, rows)
	// 1,000,001 * 0.5 = 500,000.5 → 반올림 500,001
	if rows[0].BuyerAmount != 500_001 || rows[1].BuyerAmount != 500_001 {
		t.Errorf("buyer amounts: %d, %d", rows[0].BuyerAmount, rows[1].BuyerAmount)
	}
	if rows[0].SellerAmount != 210_000 || rows[1].SellerAmount != 90_000 {
		t.Errorf("seller amounts: %d, %d", rows[0].SellerAmount, rows[1].SellerAmount)
	}
}

func TestValidateWeightsFailures(t *testing.T) {
	cases := []struct {
		name string
		rows []AllocationRow
	}{
		{"buyer short", []AllocationRow{{StaffID: "s1", BuyerWeightPct: 90, SellerWeightPct: 100}}},
		{"seller short", []AllocationRow{{StaffID: "s1", BuyerWeightPct: 100, SellerWeightPct: 90}}},
		{"both short", []AllocationRow{{StaffID: "s1", BuyerWeightPct: 10, SellerWeightPct: 20}}},
	}
	for _, c := range cases {
		ok, msg := ValidateWeights(c.rows)
		if ok {
			t.Errorf("%s: expected validation failure", c.name)
		}
		if msg == "" {
			t.Errorf("%s: expected failure description", c.name)
		}
	}
}

func TestValidateWeightsIgnoresUnassigned(t *testing.T) {
	rows := []AllocationRow{
		{StaffID: "s1", BuyerWeightPct: 60, SellerWeightPct: 50},
		{StaffID: "s2", BuyerWeightPct: 40, SellerWeightPct: 50},
		// 미배정 슬롯의 잔여 가중치는 합계 검사에서 제외
		{StaffID: "", BuyerWeightPct: 30, SellerWeightPct: 30},
	}
	if ok, msg := ValidateWeights(rows); !ok {
		t.Errorf("unexpected failure: %s", msg)
	}
}

func TestValidateWeightsFractional(t *testing.T) {
	rows := []AllocationRow{
		{StaffID: "s1", BuyerWeightPct: 33.3, SellerWeightPct: 50},
		{StaffID: "s2", BuyerWeightPct: 33.3, SellerWeightPct: 25},
		{StaffID: "s3", BuyerWeightPct: 33.4, SellerWeightPct: 25},
	}
	if ok, msg := ValidateWeights(rows); !ok {
		t.Errorf("fractional weights summing to 100 must pass: %s", msg)
	}
}

func TestPreviewRow(t *testing.T) {
	split := PerformanceSplit{BuyerPerformance: 640_000, SellerPerformance: 240_000}
	got := PreviewRow(split, 50, 50)
	if got != 440_000 {
		t.Errorf("preview = %d, want 440000", got)
	}
}
