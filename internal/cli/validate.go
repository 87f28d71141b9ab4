package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"twa-synth/internal/domain"

	"github.com/spf13/cobra"
)

var (
	valIn string

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Score an exported JSON dataset against statistical benchmarks",
		RunE:  runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVar(&valIn, "in", "", "path to a JSON dataset exported by generate (required)")
	validateCmd.MarkFlagRequired("in")
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	_, engine, err := buildPipeline(logger)
	if err != nil {
		return err
	}

	records, err := readRecords(valIn)
	if err != nil {
		return err
	}

	report, err := engine.Validate(records)
	if err != nil {
		return err
	}
	printReport(cmd, report)
	return nil
}

// readRecords 读取 generate 导出的 JSON 数据集；兼容裸记录数组
func readRecords(path string) ([]domain.MonthlyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err == nil && len(ds.Records) > 0 {
		return ds.Records, nil
	}

	var records []domain.MonthlyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}
	return records, nil
}
