package constant

// 업무 오류 코드 (2xxx)

// 매출(performance) 관련
const (
	CodeDealNotFound      = 2000 // 매출 건 없음
	CodeDealTypeInvalid   = 2001 // 거래유형이 매매/월세가 아님
	CodeDealSaveFailed    = 2002 // 매출 저장 실패 (배분 포함 전체 롤백)
	CodeWeightSumInvalid  = 2003 // 분배율 합계 100% 아님
	CodeAllocationInvalid = 2004 // 배분 슬롯 값 오류
)

// 직원/지점 관련
const (
	CodeStaffNotFound    = 2100 // 직원 없음 또는 퇴사
	CodeStaffIdInvalid   = 2101 // 직원 ID(UUID) 형식 오류
	CodeBranchNotFound   = 2102 // 지점 없음
	CodeBranchNoStaff    = 2103 // 지점 소속 재직자 없음
	CodeSettlementFailed = 2104 // 정산 집계 실패
)
