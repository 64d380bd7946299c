package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	readingsSheet = "Readings"
)

var readingHeaders = []string{"index", "timestamp", "hr", "rmssd", "lux", "temp", "motion", "sleeping"}

// ExportService renders a device's wellness window as an .xlsx workbook.
type ExportService interface {
	ExportWorkbook(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]byte, error)
}

type exportService struct {
	wellness WellnessService
	engine   *wellness.Engine
}

func NewExportService(wellnessService WellnessService, engine *wellness.Engine) ExportService {
	return &exportService{wellness: wellnessService, engine: engine}
}

func (s *exportService) ExportWorkbook(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]byte, error) {
	readings, err := s.wellness.DeviceWindow(ctx, deviceID, windowHours)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, domain.ErrNoSensorData
	}

	report := s.engine.Complete(readings)

	sleeping := make([]bool, len(readings))
	for _, p := range s.engine.SleepPeriods(readings) {
		for i := p.Start; i <= p.End; i++ {
			sleeping[i] = true
		}
	}

	return buildWorkbook(report, readings, sleeping)
}

func buildWorkbook(report domain.WellnessReport, readings []domain.Reading, sleeping []bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(readingsSheet); err != nil {
		return nil, fmt.Errorf("create readings sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, report, headerStyle); err != nil {
		return nil, err
	}
	if err := writeReadings(f, readings, sleeping, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, report domain.WellnessReport, headerStyle int) error {
	b := report.Burnout
	rows := [][]any{
		{"metric", "value"},
		{"burnout_score", b.BurnoutScore},
		{"burnout_level", string(b.BurnoutLevel)},
	}
	if cf := b.ContributingFactors; cf != nil {
		rows = append(rows,
			[]any{"sleep_impact", cf.SleepImpact},
			[]any{"sedentary_impact", cf.SedentaryImpact},
			[]any{"stress_impact", cf.StressImpact},
			[]any{"environment_impact", cf.EnvironmentImpact},
		)
	}
	rows = append(rows,
		[]any{"sleep_detected", report.Sleep.SleepDetected},
		[]any{"sleep_duration_hours", report.Sleep.TotalDurationHours},
		[]any{"sleep_score", report.Sleep.SleepScore},
		[]any{"sleep_quality", string(report.Sleep.SleepQuality)},
		[]any{"sedentary_minutes", report.Sedentary.SedentaryDurationMinutes},
		[]any{"longest_sedentary_minutes", report.Sedentary.LongestSedentaryPeriodMinutes},
		[]any{"sedentary_status", string(report.Sedentary.SedentaryStatus)},
		[]any{"hrv_score", report.Stress.HRVScore},
		[]any{"stress_level", string(report.Stress.StressLevel)},
		[]any{"avg_heart_rate", report.Stress.AvgHeartRate},
		[]any{"readings", report.ReadingsN},
	)
	for _, rec := range b.Recommendations {
		rows = append(rows, []any{"recommendation", rec})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "A", 28)
}

func writeReadings(f *excelize.File, readings []domain.Reading, sleeping []bool, headerStyle int) error {
	header := make([]any, len(readingHeaders))
	for i, h := range readingHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(readingsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write readings header: %w", err)
	}

	for i, r := range readings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{i, r.Timestamp, r.HR, r.RMSSD, r.Lux, r.Temp, string(r.Motion), sleeping[i]}
		if err := f.SetSheetRow(readingsSheet, cell, &row); err != nil {
			return fmt.Errorf("write reading row %d: %w", i, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(readingHeaders))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(readingsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	return f.SetPanes(readingsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
