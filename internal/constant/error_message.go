package constant

// ErrorInfo 오류 메시지 (한/영)
type ErrorInfo struct {
	KR string `json:"kr"`
	EN string `json:"en"`
}

// ErrorMessages 코드별 메시지 매핑
var ErrorMessages = map[int]ErrorInfo{
	// 시스템
	CodeSuccess:       {"정상 처리되었습니다", "Success"},
	CodeSystemError:   {"시스템 오류", "System error"},
	CodeDatabaseError: {"데이터베이스 오류", "Database error"},
	CodeRedisError:    {"캐시 오류", "Cache error"},
	CodeTimeout:       {"요청 시간이 초과되었습니다", "Request timeout"},
	CodeInvalidParams: {"요청 값이 올바르지 않습니다", "Invalid parameters"},
	CodeUnauthorized:  {"인증에 실패했습니다", "Unauthorized"},

	// 매출
	CodeDealNotFound:      {"매출 건을 찾을 수 없습니다", "Performance record not found"},
	CodeDealTypeInvalid:   {"거래유형은 매매 또는 월세여야 합니다", "Deal type must be sale or monthly rent"},
	CodeDealSaveFailed:    {"매출 저장에 실패했습니다. 입력값은 유지됩니다", "Failed to save performance record"},
	CodeWeightSumInvalid:  {"분배율의 합이 100%가 아닙니다", "Allocation weights must sum to 100%"},
	CodeAllocationInvalid: {"배분 슬롯 값이 올바르지 않습니다", "Invalid allocation slot"},

	// 직원/지점
	CodeStaffNotFound:    {"직원을 찾을 수 없습니다", "Staff not found"},
	CodeStaffIdInvalid:   {"직원 ID 형식이 올바르지 않습니다", "Invalid staff id"},
	CodeBranchNotFound:   {"지점을 찾을 수 없습니다", "Branch not found"},
	CodeBranchNoStaff:    {"지점 소속 재직자가 없습니다", "No active staff in branch"},
	CodeSettlementFailed: {"정산 집계에 실패했습니다", "Settlement aggregation failed"},
}
