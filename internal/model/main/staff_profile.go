package mainmodel

import "time"

// StaffProfile 직원 기준정보. ID는 외부 인증계정과 공유하는 UUID 문자열.
type StaffProfile struct {
	ID          string     `gorm:"column:id;primaryKey"`
	Name        string     `gorm:"column:name"`
	Affiliation string     `gorm:"column:affiliation"`
	Extension   string     `gorm:"column:extension"`
	JoinDate    *time.Time `gorm:"column:join_date"`
	LeaveDate   *time.Time `gorm:"column:leave_date"` // NULL = 재직
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (StaffProfile) TableName() string { return "staff_profiles" }
