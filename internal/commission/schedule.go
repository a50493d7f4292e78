package commission

import "github.com/shopspring/decimal"

// 계약금 기본 비율: 보증금의 10%
var downPaymentRate = decimal.NewFromFloat(0.10)

// DownPayment 보증금 기준 계약금 자동 산출
func DownPayment(depositPrice int64) int64 {
	return RoundWon(fromInt(depositPrice).Mul(downPaymentRate))
}

// Balance 잔금 = 보증금 - (계약금 + 중도금1~3), 음수면 0
func Balance(depositPrice, downPayment, interim1, interim2, interim3 int64) int64 {
	b := depositPrice - (downPayment + interim1 + interim2 + interim3)
	if b < 0 {
		return 0
	}
	return b
}
