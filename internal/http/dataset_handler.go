package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"twa-synth/internal/domain"
	"twa-synth/internal/service"

	"go.uber.org/zap"
)

// DatasetHandler 数据集 API 处理器（前端仪表盘的唯一后端入口）
type DatasetHandler struct {
	svc    service.DatasetService
	logger *zap.Logger
}

// NewDatasetHandler 创建处理器
func NewDatasetHandler(svc service.DatasetService, logger *zap.Logger) *DatasetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetHandler{svc: svc, logger: logger}
}

// Generate POST /synth/api/v1/datasets/generate
func (h *DatasetHandler) Generate(w http.ResponseWriter, req *http.Request) {
	var body service.GenerateDatasetRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body: "+err.Error()))
		return
	}

	summary, err := h.svc.GenerateDataset(req.Context(), body)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfiguration) {
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		h.logger.Error("dataset generation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(summary))
}

// List GET /synth/api/v1/datasets
func (h *DatasetHandler) List(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.svc.ListDatasets(req.Context())))
}

// Records GET /synth/api/v1/datasets/{id}/records?page=&page_size=
func (h *DatasetHandler) Records(w http.ResponseWriter, req *http.Request, id string) {
	q := req.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))

	out, err := h.svc.GetRecords(req.Context(), service.GetRecordsRequest{
		DatasetID: id,
		Page:      page,
		PageSize:  size,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

// Validation GET /synth/api/v1/datasets/{id}/validation
func (h *DatasetHandler) Validation(w http.ResponseWriter, req *http.Request, id string) {
	report, err := h.svc.GetValidation(req.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(report))
}

// Export GET /synth/api/v1/datasets/{id}/export?format=json|csv|excel
// 先写入缓冲区，导出成功才发送附件头（避免半截文件）。
func (h *DatasetHandler) Export(w http.ResponseWriter, req *http.Request, id string) {
	format := domain.ExportFormat(req.URL.Query().Get("format"))

	var buf bytes.Buffer
	info, err := h.svc.ExportDataset(req.Context(), id, format, &buf)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+info.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func (h *DatasetHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDatasetNotFound):
		writeJSON(w, http.StatusNotFound, Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, domain.ErrInsufficientData):
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
	default:
		h.logger.Error("dataset request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
	}
}
