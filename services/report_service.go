package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"tribunal_hearings_go/refdata"
	"tribunal_hearings_go/services/listing"
)

// GenerateHearingsReport builds an Excel summary of every stored case's
// resolved listing values, one row per case. Cases that cannot currently be
// mapped are included with the failure reason so operators can chase them.
func GenerateHearingsReport(db *gorm.DB, ref refdata.Service) (*bytes.Buffer, error) {
	records, err := ListCaseRecords(db)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Hearings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Case ID", "Benefit", "Issue", "Hearing State", "Hearing ID",
		"Duration (mins)", "Channel", "Auto List", "Priority", "Window Start", "Mapping Failure",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", headerStyle)

	for i := range records {
		record := &records[i]
		row := i + 2

		setCell := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(sheet, cell, value)
		}

		setCell(1, record.CaseID)
		setCell(2, record.Data.BenefitCode)
		setCell(3, record.Data.IssueCode)
		setCell(4, record.HearingState)
		if record.HearingID != nil {
			setCell(5, *record.HearingID)
		}

		details, err := listing.BuildHearingDetails(&record.Data, ref)
		if err != nil {
			setCell(11, err.Error())
			continue
		}
		setCell(6, details.Duration)
		if len(details.HearingChannels) > 0 {
			setCell(7, details.HearingChannels[0])
		}
		setCell(8, details.AutolistFlag)
		setCell(9, details.HearingPriorityType)
		if details.HearingWindow != nil && details.HearingWindow.DateRangeStart != nil {
			setCell(10, *details.HearingWindow.DateRangeStart)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write hearings report: %w", err)
	}
	return buf, nil
}
