package services

import (
	"time"

	"payroll_system/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PayslipArchive keeps a queryable history of processed payslips.
type PayslipArchive interface {
	Record(p models.Payslip) (models.PayslipRecord, error)
	History(employeeID int) ([]models.PayslipRecord, error)
}

type GormArchive struct {
	DB *gorm.DB
}

// OpenArchive opens (or creates) the SQLite archive at path.
func OpenArchive(path string) (*GormArchive, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewArchive(db)
}

func NewArchive(db *gorm.DB) (*GormArchive, error) {
	if err := db.AutoMigrate(&models.PayslipRecord{}); err != nil {
		return nil, err
	}
	return &GormArchive{DB: db}, nil
}

func (a *GormArchive) Record(p models.Payslip) (models.PayslipRecord, error) {
	processedAt := p.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	rec := models.PayslipRecord{
		ID:          uuid.New(),
		EmployeeID:  p.Employee.ID,
		Name:        p.Employee.Name,
		Designation: p.Employee.Designation,
		Department:  p.Employee.Department,
		BasicSalary: p.Employee.BasicSalary,
		HRA:         p.HRA,
		DA:          p.DA,
		Bonus:       p.Employee.Bonus,
		OvertimePay: p.OvertimePay,
		Tax:         p.Tax,
		PF:          p.PF,
		NetSalary:   p.NetSalary,
		ProcessedAt: processedAt,
		CreatedAt:   time.Now(),
	}
	if err := a.DB.Create(&rec).Error; err != nil {
		return models.PayslipRecord{}, err
	}
	return rec, nil
}

// History returns archived payslips for an employee, oldest first.
func (a *GormArchive) History(employeeID int) ([]models.PayslipRecord, error) {
	var records []models.PayslipRecord
	err := a.DB.Where("employee_id = ?", employeeID).
		Order("processed_at ASC").
		Find(&records).Error
	return records, err
}

func (a *GormArchive) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
