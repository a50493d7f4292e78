package constant

// 시스템 오류 코드 (1xxx)

const (
	CodeSuccess       = 0    // 정상 처리
	CodeSystemError   = 1000 // 서버 내부 오류
	CodeDatabaseError = 1001 // DB 오류 (연결/질의/트랜잭션)
	CodeRedisError    = 1002 // Redis 오류
	CodeTimeout       = 1005 // 처리 시간 초과
)

// 파라미터 오류 코드
const (
	CodeInvalidParams = 1100 // 요청 파라미터 형식 오류
	CodeUnauthorized  = 1101 // 서명 누락/불일치
)
