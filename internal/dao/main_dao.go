package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"baikuk-backoffice-api/internal/dal"
	mainmodel "baikuk-backoffice-api/internal/model/main"
)

type MainDao struct {
	DB *gorm.DB
}

// 기본은 dal.MainDB 사용
func NewMainDao() *MainDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &MainDao{DB: dal.MainDB}
}

func NewMainDaoWithDB(db *gorm.DB) *MainDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &MainDao{DB: db}
}

func (r *MainDao) checkDB() error {
	if r == nil {
		return errors.New("MainDao is nil")
	}
	if r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// 재직자 전체 (leave_date IS NULL)
func (r *MainDao) ListActiveStaff() ([]mainmodel.StaffProfile, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list active staff failed: %w", err)
	}
	var out []mainmodel.StaffProfile
	err := r.DB.Where("leave_date IS NULL").Order("affiliation, name").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return out, nil
}

// 지점 소속 재직자
func (r *MainDao) ListActiveStaffByAffiliation(affiliation string) ([]mainmodel.StaffProfile, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list staff by affiliation failed: %w", err)
	}
	var out []mainmodel.StaffProfile
	err := r.DB.Where("affiliation = ? AND leave_date IS NULL", affiliation).
		Order("name").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return out, nil
}

// 직원 단건 (퇴사자 포함: 과거 매출 표시용)
func (r *MainDao) GetStaff(id string) (*mainmodel.StaffProfile, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get staff failed: %w", err)
	}
	var m mainmodel.StaffProfile
	err := r.DB.Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// 지점 목록
func (r *MainDao) ListBranches() ([]mainmodel.BranchInfo, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list branches failed: %w", err)
	}
	var out []mainmodel.BranchInfo
	err := r.DB.Order("affiliation").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return out, nil
}

// 지점 단건
func (r *MainDao) GetBranch(affiliation string) (*mainmodel.BranchInfo, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get branch failed: %w", err)
	}
	var m mainmodel.BranchInfo
	err := r.DB.Where("affiliation = ?", affiliation).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}
