package app

import (
	"errors"
	"fmt"
	"log"

	"tunnelstats/domain/analysis"
	"tunnelstats/domain/core"
	"tunnelstats/domain/report"
	"tunnelstats/domain/table"
)

// AnalysisRequest defines one pipeline invocation. The caller (UI or CLI)
// owns these session parameters and re-invokes the service when they change.
type AnalysisRequest struct {
	// XAxis and YAxis select the primary pair; empty values default to the
	// first two numeric columns after cleaning.
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`
	ZAxis string `json:"z_axis"`

	// RangeLow/RangeHigh restrict rows to a chainage interval; nil means
	// the full extent of the data.
	RangeLow  *float64 `json:"range_low"`
	RangeHigh *float64 `json:"range_high"`

	// TopN caps the correlation ranking; 0 uses the configured default.
	TopN int `json:"top_n"`
}

// AnalysisResult is the complete output of one pipeline run.
type AnalysisResult struct {
	DatasetID      core.DatasetID `json:"dataset_id"`
	PositionColumn string         `json:"position_column,omitempty"`
	RangeLow       float64        `json:"range_low"`
	RangeHigh      float64        `json:"range_high"`
	RowCount       int            `json:"row_count"`

	XAxis          string   `json:"x_axis"`
	YAxis          string   `json:"y_axis"`
	ZAxis          string   `json:"z_axis,omitempty"`
	NumericColumns []string `json:"numeric_columns"`

	// Correlation is nil when undefined for the selected pair.
	Correlation *float64                   `json:"correlation,omitempty"`
	Trend       *analysis.TrendResult      `json:"trend,omitempty"`
	TopPairs    []analysis.CorrelationPair `json:"top_pairs"`

	WeakZoneColumns []string                 `json:"weak_zone_columns"`
	MachineColumns  []string                 `json:"machine_columns"`
	Summaries       []analysis.ColumnSummary `json:"summaries"`
	MinVelocity     *float64                 `json:"min_velocity,omitempty"`

	ReportLines []string     `json:"report_lines"`
	Table       *table.Table `json:"table"`
}

// Options configures the analysis service.
type Options struct {
	// RequirePosition makes a missing chainage column fatal. When false the
	// pipeline proceeds without range filtering or sorting.
	RequirePosition bool
	// TopCorrelations is the default ranking size.
	TopCorrelations int
	// Rules overrides the column classification conventions.
	Rules table.Rules
}

// AnalysisService runs the normalization and correlation pipeline. Each call
// works on its own table snapshot; the service holds no per-dataset state,
// so concurrent sessions are safe by construction.
type AnalysisService struct {
	requirePosition bool
	topN            int
	rules           table.Rules

	normalizer *table.Normalizer
	engine     *analysis.CorrelationEngine
	fitter     *analysis.TrendFitter
	builder    *report.Builder
}

// NewAnalysisService creates the pipeline service.
func NewAnalysisService(opts Options) *AnalysisService {
	rules := opts.Rules
	if rules == nil {
		rules = table.DefaultRules()
	}
	topN := opts.TopCorrelations
	if topN <= 0 {
		topN = 5
	}
	return &AnalysisService{
		requirePosition: opts.RequirePosition,
		topN:            topN,
		rules:           rules,
		normalizer:      table.NewNormalizer(rules),
		engine:          analysis.NewCorrelationEngine(),
		fitter:          analysis.NewTrendFitter(),
		builder:         report.NewBuilder(),
	}
}

// Analyze cleans the raw table, applies the requested chainage range and
// derives correlation, trend and weak-zone outputs plus the report lines.
//
// Structural failures (missing chainage column under RequirePosition,
// invalid range, fewer than two numeric columns) abort with an explicit
// error. Per-pair conditions (undefined correlation, degenerate fit) only
// blank the affected field.
func (s *AnalysisService) Analyze(raw *table.Table, req AnalysisRequest) (*AnalysisResult, error) {
	if raw == nil || len(raw.Rows) == 0 {
		return nil, core.ErrEmptyTable
	}

	working, posCol, err := s.normalizer.Normalize(raw)
	if err != nil {
		if !errors.Is(err, core.ErrMissingPositionColumn) || s.requirePosition {
			return nil, err
		}
		log.Printf("[AnalysisService] No chainage column, proceeding unfiltered")
	}

	result := &AnalysisResult{
		DatasetID:      core.DatasetID(core.NewID()),
		PositionColumn: posCol,
		ZAxis:          req.ZAxis,
	}

	if posCol != "" {
		working, err = s.applyRange(working, posCol, req, result)
		if err != nil {
			return nil, err
		}
	}
	if len(working.Rows) == 0 {
		return nil, fmt.Errorf("%w after cleaning and filtering", core.ErrEmptyTable)
	}

	numericCols := table.NumericColumns(working)
	if len(numericCols) < 2 {
		return nil, fmt.Errorf("%w: found %d", core.ErrInsufficientNumericColumns, len(numericCols))
	}
	result.NumericColumns = numericCols
	result.RowCount = len(working.Rows)
	result.Table = working

	if err := s.resolveAxes(req, numericCols, result); err != nil {
		return nil, err
	}

	s.computeStatistics(working, req, result)

	result.WeakZoneColumns = analysis.SelectWeakZoneColumns(s.rules, working.Columns)
	result.MachineColumns = analysis.SelectMachineColumns(s.rules, working.Columns)
	result.Summaries = analysis.Describe(working)
	if minV, err := analysis.MinimumValue(working, result.WeakZoneColumns); err == nil {
		result.MinVelocity = &minV
	}

	result.ReportLines = s.buildReport(working, result)
	return result, nil
}

// applyRange validates the requested interval against the data extent and
// filters. Bounds that are inverted or lie entirely outside the data are a
// caller error, never silently corrected.
func (s *AnalysisService) applyRange(t *table.Table, posCol string, req AnalysisRequest, result *AnalysisResult) (*table.Table, error) {
	min, max, ok := table.Extent(t, posCol)
	if !ok {
		return nil, fmt.Errorf("%w: no usable chainage values", core.ErrEmptyTable)
	}

	low, high := min, max
	if req.RangeLow != nil {
		low = *req.RangeLow
	}
	if req.RangeHigh != nil {
		high = *req.RangeHigh
	}
	if low > high {
		return nil, core.NewInvalidRangeError(low, high, "lower bound exceeds upper bound")
	}
	if high < min || low > max {
		return nil, core.NewInvalidRangeError(low, high, fmt.Sprintf("outside data extent [%g, %g]", min, max))
	}

	filtered, err := table.FilterRange(t, posCol, low, high)
	if err != nil {
		return nil, err
	}
	result.RangeLow = low
	result.RangeHigh = high
	return filtered, nil
}

// resolveAxes fills in defaults (first and second numeric column) and
// rejects selections that are not numeric columns of the working table.
func (s *AnalysisService) resolveAxes(req AnalysisRequest, numericCols []string, result *AnalysisResult) error {
	result.XAxis = req.XAxis
	result.YAxis = req.YAxis
	if result.XAxis == "" {
		result.XAxis = numericCols[0]
	}
	if result.YAxis == "" {
		result.YAxis = numericCols[1]
	}

	for _, axis := range []string{result.XAxis, result.YAxis} {
		if !contains(numericCols, axis) {
			return core.NewColumnNotFoundError(axis)
		}
	}
	if result.ZAxis != "" && !contains(numericCols, result.ZAxis) {
		return core.NewColumnNotFoundError(result.ZAxis)
	}
	return nil
}

// computeStatistics fills the per-pair outputs, tolerating per-pair errors.
func (s *AnalysisService) computeStatistics(t *table.Table, req AnalysisRequest, result *AnalysisResult) {
	if r, err := s.engine.PairCorrelation(t, result.XAxis, result.YAxis); err == nil {
		result.Correlation = &r
	} else {
		log.Printf("[AnalysisService] Correlation %s vs %s omitted: %v", result.XAxis, result.YAxis, err)
	}

	if trend, err := s.fitter.Fit(t, result.XAxis, result.YAxis); err == nil {
		result.Trend = trend
	} else if core.IsPairError(err) {
		log.Printf("[AnalysisService] Trend line omitted: %v", err)
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.topN
	}
	pairs, err := s.engine.TopCorrelations(t, topN)
	if err != nil {
		// Numeric column count was already checked; keep the ranking empty.
		log.Printf("[AnalysisService] Correlation ranking unavailable: %v", err)
	}
	result.TopPairs = pairs
}

func (s *AnalysisService) buildReport(t *table.Table, result *AnalysisResult) []string {
	params := report.Params{
		RangeLow:  result.RangeLow,
		RangeHigh: result.RangeHigh,
		HasRange:  result.PositionColumn != "",
		XAxis:     result.XAxis,
		YAxis:     result.YAxis,
		ZAxis:     result.ZAxis,
		Trend:     result.Trend,
		TopPairs:  result.TopPairs,
	}
	if result.Correlation != nil {
		params.Correlation = *result.Correlation
		params.CorrelationDefined = true
	}
	if meanY, err := analysis.MeanValue(t, result.YAxis); err == nil {
		params.MeanY = &meanY
	}
	params.MinVelocity = result.MinVelocity

	return s.builder.Build(params)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
