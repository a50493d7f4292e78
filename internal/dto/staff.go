package dto

// StaffVO 직원 선택 목록 항목
type StaffVO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Extension   string `json:"extension,omitempty"`
}

// StaffGroupVO 지점별 직원 그룹 (폼 셀렉트 채우기용)
type StaffGroupVO struct {
	Affiliation string    `json:"affiliation"`
	Staff       []StaffVO `json:"staff"`
}
