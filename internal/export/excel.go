package export

import (
	"fmt"
	"io"

	"twa-synth/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	recordsSheet    = "Monthly Records"
	validationSheet = "Validation"
)

// WriteExcel 导出 Excel 工作簿
// "Monthly Records" 表为扁平记录；附带验证报告时追加 "Validation" 表。
func (e *Exporter) WriteExcel(w io.Writer, ds *domain.Dataset) error {
	f := excelize.NewFile()
	// Note: WriteTo 需要文件保持打开，错误路径上单独 Close

	index, err := f.NewSheet(recordsSheet)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// 表头
	for col, header := range RecordHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(recordsSheet, cell, header); err != nil {
			f.Close()
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(recordsSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	// 数据行（第 2 行起）
	for rowIdx, record := range ds.Records {
		row := rowIdx + 2
		for colIdx, value := range FlattenRecord(record) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				f.Close()
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(recordsSheet, cell, value); err != nil {
				f.Close()
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	// 统一列宽（58 列 → 最后一列 BF）
	if err := f.SetColWidth(recordsSheet, "A", "BF", 18); err != nil {
		f.Close()
		return fmt.Errorf("failed to set column width: %w", err)
	}

	// 冻结表头
	if err := f.SetPanes(recordsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if ds.Validation != nil {
		if err := writeValidationSheet(f, headerStyle, ds.Validation); err != nil {
			f.Close()
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}
	return nil
}

// writeValidationSheet 验证报告表：每行一个指标（组 / 指标 / 值）
func writeValidationSheet(f *excelize.File, headerStyle int, report *domain.ValidationReport) error {
	if _, err := f.NewSheet(validationSheet); err != nil {
		return fmt.Errorf("failed to create validation sheet: %w", err)
	}

	headers := []string{"Group", "Metric", "Value"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(validationSheet, cell, h); err != nil {
			return fmt.Errorf("failed to set validation header: %w", err)
		}
		if err := f.SetCellStyle(validationSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set validation header style: %w", err)
		}
	}

	rows := [][3]any{
		{"demographic_accuracy", "age_distribution_distance", report.Demographics.AgeDistributionDistance},
		{"demographic_accuracy", "income_education_corr", report.Demographics.IncomeEducationCorr},
		{"demographic_accuracy", "age_fitness_corr", report.Demographics.AgeFitnessCorr},
		{"behavior_correlations", "exercise_sleep_quality", report.Behaviors.ExerciseSleepQuality},
		{"behavior_correlations", "diet_relaxation", report.Behaviors.DietRelaxation},
		{"behavior_correlations", "social_purpose", report.Behaviors.SocialPurpose},
		{"outcome_validity", "exercise_bioage_gap", report.Outcomes.ExerciseBioAgeGap},
		{"outcome_validity", "smoking_mortality_gap", report.Outcomes.SmokingMortalityGap},
		{"outcome_validity", "purpose_lifespan_gap", report.Outcomes.PurposeLifespanGap},
		{"longitudinal_coherence", "seasonal_exercise_sd", report.Longitudinal.SeasonalExerciseSD},
		{"longitudinal_coherence", "mean_aging_slope", report.Longitudinal.MeanAgingSlope},
		{"longitudinal_coherence", "behavior_stability", report.Longitudinal.BehaviorStability},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(validationSheet, cell, v); err != nil {
				return fmt.Errorf("failed to set validation cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
