package dealmodel

import "time"

// PerformanceLog 저장 감사 로그. 월별 샤드 테이블에 기록된다.
type PerformanceLog struct {
	ID            uint64    `gorm:"column:id;primaryKey"`
	PerformanceID uint64    `gorm:"column:performance_id"`
	Action        string    `gorm:"column:action"` // create | update
	Operator      string    `gorm:"column:operator"`
	Snapshot      string    `gorm:"column:snapshot"` // 저장 시점 JSON
	CreatedAt     time.Time `gorm:"column:created_at"`
}
