package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tribunal_hearings_go/models"
)

var ErrCaseNotFound = errors.New("case not found")

// GetCaseRecord fetches the stored case by its tribunal case id
func GetCaseRecord(db *gorm.DB, caseID string) (*models.CaseRecord, error) {
	var record models.CaseRecord
	err := db.First(&record, "case_id = ?", caseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch case %s: %w", caseID, err)
	}
	return &record, nil
}

// SaveCaseData stores a case aggregate, creating the record on first sight
func SaveCaseData(db *gorm.DB, data models.CaseData) (*models.CaseRecord, error) {
	record, err := GetCaseRecord(db, data.CaseID)
	if errors.Is(err, ErrCaseNotFound) {
		record = &models.CaseRecord{CaseID: data.CaseID, Data: data}
		if err := db.Create(record).Error; err != nil {
			return nil, fmt.Errorf("failed to create case %s: %w", data.CaseID, err)
		}
		return record, nil
	}
	if err != nil {
		return nil, err
	}

	record.Data = data
	if err := db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update case %s: %w", data.CaseID, err)
	}
	return record, nil
}

// UpdateCaseRecord persists changes to an already loaded record
func UpdateCaseRecord(db *gorm.DB, record *models.CaseRecord) error {
	if err := db.Save(record).Error; err != nil {
		return fmt.Errorf("failed to update case %s: %w", record.CaseID, err)
	}
	return nil
}

// ListCaseRecords returns every stored case, newest first
func ListCaseRecords(db *gorm.DB) ([]models.CaseRecord, error) {
	var records []models.CaseRecord
	if err := db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return records, nil
}

// DeleteCaseRecord removes a stored case
func DeleteCaseRecord(db *gorm.DB, caseID string) error {
	result := db.Where("case_id = ?", caseID).Delete(&models.CaseRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete case %s: %w", caseID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCaseNotFound
	}
	return nil
}
