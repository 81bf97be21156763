package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"EmoGoBackend/models"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ExportResult 导出结果，由控制器作为附件返回
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
	Kinds       []models.RecordKind
	Records     int
}

// ExportService 读取一个或多个集合并序列化为 JSON 或 CSV
type ExportService struct {
	store RecordStore
}

func NewExportService(store RecordStore) *ExportService {
	return &ExportService{store: store}
}

// ParseSelectors 校验 data_type 和 format，format 为空时默认为 json
func ParseSelectors(dataType, format string) ([]models.RecordKind, string, error) {
	if strings.TrimSpace(dataType) == "" {
		return nil, "", &SelectorError{Param: "data_type", Value: dataType, Reason: "data_type is required"}
	}
	kinds, ok := models.ResolveDataType(dataType)
	if !ok {
		return nil, "", &SelectorError{Param: "data_type", Value: dataType}
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatCSV {
		return nil, "", &SelectorError{Param: "format", Value: format}
	}

	if format == FormatCSV && len(kinds) > 1 {
		return nil, "", &SelectorError{
			Param:  "data_type",
			Value:  dataType,
			Reason: "csv export supports a single record kind",
		}
	}
	return kinds, format, nil
}

// Export 按选择器导出数据
func (s *ExportService) Export(ctx context.Context, dataType, format string) (*ExportResult, error) {
	kinds, format, err := ParseSelectors(dataType, format)
	if err != nil {
		return nil, err
	}
	label := strings.ToLower(strings.TrimSpace(dataType))

	if format == FormatCSV {
		records, err := s.store.FindAll(ctx, kinds[0], FindOptions{})
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", kinds[0], err)
		}
		body, err := EncodeCSV(kinds[0], records)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("emogo_export_%s.csv", label),
			ContentType: "text/csv; charset=utf-8",
			Body:        body,
			Kinds:       kinds,
			Records:     len(records),
		}, nil
	}

	payload := make(map[string]interface{}, len(kinds)+2)
	total := 0
	for _, kind := range kinds {
		records, err := s.store.FindAll(ctx, kind, FindOptions{})
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", kind, err)
		}
		payload[kind.ListKey()] = records
		total += len(records)
	}
	payload["data_type"] = label
	payload["export_timestamp"] = nowFunc().UTC().Format(time.RFC3339)

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return &ExportResult{
		Filename:    fmt.Sprintf("emogo_export_%s.json", label),
		ContentType: "application/json; charset=utf-8",
		Body:        body,
		Kinds:       kinds,
		Records:     total,
	}, nil
}

// EncodeCSV 按类型的固定列输出 CSV，空集合只有表头
func EncodeCSV(kind models.RecordKind, records []models.Record) ([]byte, error) {
	header := models.CSVHeader(kind)
	if header == nil {
		return nil, &SelectorError{Param: "data_type", Value: string(kind)}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if rec.Kind() != kind {
			return nil, fmt.Errorf("record of kind %q in %q export", rec.Kind(), kind)
		}
		if err := w.Write(rec.CSVRow()); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
