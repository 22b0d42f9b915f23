// Package export renders complaint lists as XLSX workbooks for offline
// reporting.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"complaintdesk/backend/internal/models"
)

const sheetName = "Complaints"

var headers = []string{"ID", "Title", "Message", "Status", "Priority", "Category ID", "Created At"}

// Complaints builds a workbook with one row per complaint. The caller
// owns the returned file and must Close it.
func Complaints(items []models.Complaint) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, name := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, err
		}
	}

	for i, c := range items {
		row := i + 2
		values := []interface{}{
			c.ID,
			c.Title,
			c.Message,
			string(c.Status),
			string(c.Priority),
			c.CategoryID,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
