package mainmodel

import "time"

// BranchInfo 지점 정보
type BranchInfo struct {
	Affiliation        string    `gorm:"column:affiliation;primaryKey"`
	OfficeName         string    `gorm:"column:office_name"`
	FullAddress        string    `gorm:"column:full_address"`
	ContactNumber      string    `gorm:"column:contact_number"`
	RegistrationNumber string    `gorm:"column:registration_number"`
	RepresentativeName string    `gorm:"column:representative_name"`
	IsPublic           bool      `gorm:"column:is_public"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (BranchInfo) TableName() string { return "branch_info" }
