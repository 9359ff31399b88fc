package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestGenerateHearingsReport(t *testing.T) {
	db := setupCaseTestDB()

	_, err := SaveCaseData(db, testCaseData("100"))
	assert.NoError(t, err)

	broken := testCaseData("200")
	broken.IssueCode = "XX"
	_, err = SaveCaseData(db, broken)
	assert.NoError(t, err)

	buf, err := GenerateHearingsReport(db, testRefData())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Hearings")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Case ID", rows[0][0])

	byCaseID := map[string][]string{}
	for _, row := range rows[1:] {
		byCaseID[row[0]] = row
	}

	mapped := byCaseID["100"]
	assert.Equal(t, "60", mapped[5])
	assert.Equal(t, "INTER", mapped[6])

	failed := byCaseID["200"]
	assert.NotEmpty(t, failed[10])
}
