package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"qbrain-backend/internal/domains/application/model"
)

var exportHeaders = []string{
	"ID",
	"Full Name",
	"Email",
	"Phone",
	"Branch",
	"Year",
	"Preferred Role",
	"Quiz Score",
	"Interview Slot",
	"Status",
	"Resume URL",
	"Portfolio URL",
	"Motivation",
	"Experience",
	"Submitted At",
}

func (s *applicationService) Export(ctx context.Context, status string) ([]byte, error) {
	apps, err := s.List(ctx, status)
	if err != nil {
		return nil, err
	}

	f, err := buildApplicationsFile(apps)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func buildApplicationsFile(apps []*model.Application) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := model.ExportSheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	// Row 1: header
	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetCellStyle(sheet, "A1", lastCol+"1", style)
	}

	// Data từ row 2
	for i, app := range apps {
		row := i + 2
		p := app.PersonalInfo

		score := "Not completed"
		if s := app.QuizScore(); s != nil {
			score = strconv.Itoa(*s) + "%"
		}

		values := []interface{}{
			app.ID,
			p.FullName,
			p.Email,
			p.Phone,
			p.Branch,
			p.Year,
			p.PreferredRole,
			score,
			app.InterviewSlot.String(),
			app.Status,
			app.ResumeURL(),
			p.PortfolioURL,
			p.Motivation,
			p.Experience,
			app.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", lastCol, 20)
	return f, nil
}
