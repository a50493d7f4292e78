package dto

// MonthlyTotal 지점 월별 관여매출 합계
type MonthlyTotal struct {
	Month     string `json:"month"` // YYYY-MM
	Total     int64  `json:"total"`
	TotalText string `json:"total_text"` // 콤마 표기
}

// BranchMonthlyResp 지점 정산 응답
type BranchMonthlyResp struct {
	Affiliation string         `json:"affiliation"`
	Months      []MonthlyTotal `json:"months"`
}

// BranchVO 지점 목록 항목
type BranchVO struct {
	Affiliation   string `json:"affiliation"`
	OfficeName    string `json:"office_name"`
	ContactNumber string `json:"contact_number"`
}
