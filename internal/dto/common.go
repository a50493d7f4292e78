package dto

import (
	"bytes"
	"strconv"
	"strings"
)

// Won 금액 필드. 폼에서 "1,234,567" 같은 콤마 문자열로도 들어오므로
// 숫자/문자열/null 모두 허용하고, 해석 불가능한 값은 0으로 둔다.
// (numOrNull 동작: 입력 오류는 예외가 아니라 0으로 계산한다)
type Won int64

func (w *Won) UnmarshalJSON(b []byte) error {
	*w = Won(coerceNumber(b))
	return nil
}

// Pct 비율 필드. Won과 같은 규칙으로 관대하게 받는다.
type Pct float64

func (p *Pct) UnmarshalJSON(b []byte) error {
	*p = Pct(coerceFloat(b))
	return nil
}

func coerceNumber(b []byte) int64 {
	f := coerceFloat(b)
	return int64(f)
}

func coerceFloat(b []byte) float64 {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
