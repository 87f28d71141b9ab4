package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"twa-synth/internal/domain"

	"go.uber.org/zap"
)

// Exporter 数据集导出器：把记录集合序列化为 json/csv/excel 下载格式
// 核心生成管线不感知导出；本包属于被排除在核心之外的格式转换协作层。
type Exporter struct {
	logger *zap.Logger
}

// NewExporter 创建导出器
func NewExporter(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

// Export 按格式写出数据集
func (e *Exporter) Export(w io.Writer, format domain.ExportFormat, ds *domain.Dataset) error {
	switch format {
	case domain.ExportJSON:
		return e.WriteJSON(w, ds)
	case domain.ExportCSV:
		return e.WriteCSV(w, ds.Records)
	case domain.ExportExcel:
		return e.WriteExcel(w, ds)
	default:
		return fmt.Errorf("%w: unsupported export format %q", domain.ErrInvalidConfiguration, format)
	}
}

// WriteJSON 导出嵌套 JSON（保留 profile/behaviors/outcomes 命名子结构）
func (e *Exporter) WriteJSON(w io.Writer, ds *domain.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode dataset json: %w", err)
	}
	return nil
}

// WriteCSV 导出扁平 CSV：每条记录一行，列序与 RecordHeaders 一致
func (e *Exporter) WriteCSV(w io.Writer, records []domain.MonthlyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RecordHeaders); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(RecordHeaders))
	for i, r := range records {
		for j, v := range FlattenRecord(r) {
			row[j] = formatCell(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 4, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// FileName 下载文件名
func FileName(datasetID string, format domain.ExportFormat) string {
	switch format {
	case domain.ExportCSV:
		return "twa-dataset-" + datasetID + ".csv"
	case domain.ExportExcel:
		return "twa-dataset-" + datasetID + ".xlsx"
	default:
		return "twa-dataset-" + datasetID + ".json"
	}
}

// ContentType 下载 MIME 类型
func ContentType(format domain.ExportFormat) string {
	switch format {
	case domain.ExportCSV:
		return "text/csv"
	case domain.ExportExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}
