package commission

import "github.com/shopspring/decimal"

// RoundWon 원 단위 반올림 (round half up).
// 모든 금액 계산은 이 헬퍼 하나로 반올림한다.
func RoundWon(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func fromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func pct(p float64) decimal.Decimal {
	return decimal.NewFromFloat(p).Div(decimal.NewFromInt(100))
}
