package commission

import "testing"

func TestDeriveFeeSale(t *testing.T) {
	deal := DealRecord{DealType: DealSale, SalePrice: 60_000_000}
	fee, ok := DeriveFee(deal)
	if !ok {
		t.Fatal("expected fee for sale deal")
	}
	if fee.BuyerFee != 540_000 || fee.SellerFee != 540_000 {
		t.Errorf("unexpected fee: %+v", fee)
	}
}

func TestDeriveFeeSaleLowTier(t *testing.T) {
	deal := DealRecord{DealType: DealSale, SalePrice: 40_000_000}
	fee, ok := DeriveFee(deal)
	if !ok {
		t.Fatal("expected fee for sale deal")
	}
	// 40,000,000 * 0.007 = 280,000
	if fee.BuyerFee != 280_000 || fee.SellerFee != 280_000 {
		t.Errorf("unexpected fee: %+v", fee)
	}
}

func TestDeriveFeeMonthlyRent(t *testing.T) {
	deal := DealRecord{
		DealType:     DealMonthlyRent,
		MonthlyRent:  2_000_000,
		DepositPrice: 30_000_000,
	}
	base, ok := BaseAmount(deal)
	if !ok || base != 230_000_000 {
		t.Fatalf("unexpected base amount: %d", base)
	}
	fee, ok := DeriveFee(deal)
	if !ok {
		t.Fatal("expected fee for monthly rent deal")
	}
	if fee.BuyerFee != 2_070_000 || fee.SellerFee != 2_070_000 {
		t.Errorf("unexpected fee: %+v", fee)
	}
}

func TestDeriveFeeUnknownType(t *testing.T) {
	deal := DealRecord{DealType: "전세", SalePrice: 100_000_000}
	if _, ok := DeriveFee(deal); ok {
		t.Error("unknown deal type must not derive a fee")
	}
}

func TestFeeRateThreshold(t *testing.T) {
	cases := []struct {
		base int64
		want string
	}{
		{49_999_999, "0.007"},
		{50_000_000, "0.009"},
		{0, "0.007"},
		{230_000_000, "0.009"},
	}
	for _, c := range cases {
		if got := FeeRate(c.base).String(); got != c.want {
			t.Errorf("FeeRate(%d) = %s, want %s", c.base, got, c.want)
		}
	}
}
