package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"twa-synth/internal/domain"
	"twa-synth/internal/export"
	"twa-synth/internal/generator"
	"twa-synth/internal/store"
	"twa-synth/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DatasetService 数据集服务接口
type DatasetService interface {
	GenerateDataset(ctx context.Context, req GenerateDatasetRequest) (*DatasetSummary, error)
	ListDatasets(ctx context.Context) []DatasetSummary
	GetRecords(ctx context.Context, req GetRecordsRequest) (*RecordsPage, error)
	GetValidation(ctx context.Context, datasetID string) (*domain.ValidationReport, error)
	ExportDataset(ctx context.Context, datasetID string, format domain.ExportFormat, w io.Writer) (*ExportInfo, error)
}

// datasetService 实现
type datasetService struct {
	gen      *generator.Generator
	engine   *validation.Engine
	exporter *export.Exporter
	datasets *store.DatasetStore
	logger   *zap.Logger
}

// NewDatasetService 创建 DatasetService 实例
func NewDatasetService(gen *generator.Generator, engine *validation.Engine, exporter *export.Exporter, datasets *store.DatasetStore, logger *zap.Logger) DatasetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &datasetService{
		gen:      gen,
		engine:   engine,
		exporter: exporter,
		datasets: datasets,
		logger:   logger,
	}
}

// GenerateDatasetRequest 生成请求
type GenerateDatasetRequest struct {
	SubjectCount      int                 `json:"subject_count"`
	Months            int                 `json:"months"`
	Seed              int64               `json:"seed"`
	Workers           int                 `json:"workers"`
	IncludeValidation bool                `json:"include_validation"`
	ExportFormat      domain.ExportFormat `json:"export_format"`
}

// DatasetSummary 数据集摘要（列表与生成响应）
type DatasetSummary struct {
	DatasetID     string              `json:"dataset_id"`
	SubjectCount  int                 `json:"subject_count"`
	Months        int                 `json:"months"`
	RecordCount   int                 `json:"record_count"`
	Seed          int64               `json:"seed"`
	ExportFormat  domain.ExportFormat `json:"export_format"`
	HasValidation bool                `json:"has_validation"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

// GetRecordsRequest 记录分页请求
type GetRecordsRequest struct {
	DatasetID string
	Page      int // 1 起
	PageSize  int
}

// RecordsPage 记录分页响应
type RecordsPage struct {
	Items      []domain.MonthlyRecord   `json:"items"`
	Pagination domain.BackendPagination `json:"pagination"`
}

// ExportInfo 导出响应头信息
type ExportInfo struct {
	FileName    string
	ContentType string
}

// GenerateDataset 运行生成管线（按需运行验证），存入内存库并返回摘要
func (s *datasetService) GenerateDataset(ctx context.Context, req GenerateDatasetRequest) (*DatasetSummary, error) {
	cfg := domain.GenerationConfig{
		SubjectCount:      req.SubjectCount,
		Months:            req.Months,
		IncludeValidation: req.IncludeValidation,
		ExportFormat:      req.ExportFormat,
		Seed:              req.Seed,
		Workers:           req.Workers,
	}
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = domain.ExportJSON
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		// 服务层固定种子，让 HTTP 消费方能够复现同一数据集
		cfg.Seed = time.Now().UnixNano()
	}

	records, err := s.gen.Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		DatasetID:   uuid.New().String(),
		Config:      cfg,
		Records:     records,
		GeneratedAt: time.Now().UTC(),
	}

	// 核心验证函数仅在 IncludeValidation 为 true 时调用
	if cfg.IncludeValidation {
		report, err := s.engine.Validate(records)
		if err != nil {
			return nil, fmt.Errorf("validation after generation failed: %w", err)
		}
		ds.Validation = report
	}

	s.datasets.Put(ds)
	s.logger.Info("dataset stored",
		zap.String("dataset_id", ds.DatasetID),
		zap.Int("records", len(records)),
	)
	return summarize(ds), nil
}

// ListDatasets 按插入序返回摘要
func (s *datasetService) ListDatasets(ctx context.Context) []DatasetSummary {
	all := s.datasets.List()
	out := make([]DatasetSummary, 0, len(all))
	for _, ds := range all {
		out = append(out, *summarize(ds))
	}
	return out
}

// GetRecords 分页读取记录（保持生成序：按受试者分组、月份升序）
func (s *datasetService) GetRecords(ctx context.Context, req GetRecordsRequest) (*RecordsPage, error) {
	ds, err := s.datasets.Get(req.DatasetID)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size < 1 {
		size = 100
	}

	total := len(ds.Records)
	lo := (page - 1) * size
	if lo > total {
		lo = total
	}
	hi := lo + size
	if hi > total {
		hi = total
	}

	return &RecordsPage{
		Items: ds.Records[lo:hi],
		Pagination: domain.BackendPagination{
			Size:  size,
			Page:  page,
			Count: total,
			Sort:  "subject_id,month_index",
		},
	}, nil
}

// GetValidation 读取验证报告；生成时未启用验证则对存量记录按需计算
// （不回写数据集，保持存量对象只读，避免并发请求间的写竞争）
func (s *datasetService) GetValidation(ctx context.Context, datasetID string) (*domain.ValidationReport, error) {
	ds, err := s.datasets.Get(datasetID)
	if err != nil {
		return nil, err
	}
	if ds.Validation != nil {
		return ds.Validation, nil
	}
	return s.engine.Validate(ds.Records)
}

// ExportDataset 按格式写出数据集并返回下载头信息
func (s *datasetService) ExportDataset(ctx context.Context, datasetID string, format domain.ExportFormat, w io.Writer) (*ExportInfo, error) {
	ds, err := s.datasets.Get(datasetID)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = ds.Config.ExportFormat
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unsupported export format %q", domain.ErrInvalidConfiguration, format)
	}
	if err := s.exporter.Export(w, format, ds); err != nil {
		return nil, err
	}
	return &ExportInfo{
		FileName:    export.FileName(ds.DatasetID, format),
		ContentType: export.ContentType(format),
	}, nil
}

func summarize(ds *domain.Dataset) *DatasetSummary {
	return &DatasetSummary{
		DatasetID:     ds.DatasetID,
		SubjectCount:  ds.Config.SubjectCount,
		Months:        ds.Config.Months,
		RecordCount:   len(ds.Records),
		Seed:          ds.Config.Seed,
		ExportFormat:  ds.Config.ExportFormat,
		HasValidation: ds.Validation != nil,
		GeneratedAt:   ds.GeneratedAt,
	}
}
