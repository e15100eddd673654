package recommending

import (
	"errors"
	"fmt"
)

var (
	ErrInputValidation             = errors.New("input row without grouping keys")
	ErrMissingFeature              = errors.New("missing numeric feature")
	ErrMissingClusterLabel         = errors.New("missing cluster label")
	ErrClusteringOracleUnavailable = errors.New("clustering oracle unavailable")
	ErrReportingSourceUnavailable  = errors.New("reporting source unavailable")
)

// InputValidationError é uma linha descartada antes da classificação
type InputValidationError struct {
	Row    int
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

func (e *InputValidationError) Unwrap() error {
	return ErrInputValidation
}

// MissingFeatureError é um campo numérico ausente ou inválido substituído por zero
type MissingFeatureError struct {
	Row   int
	Field string
	Value any
}

func (e *MissingFeatureError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("row %d: field %q absent, using 0", e.Row, e.Field)
	}
	return fmt.Sprintf("row %d: field %q has non numeric value %v, using 0", e.Row, e.Field, e.Value)
}

func (e *MissingFeatureError) Unwrap() error {
	return ErrMissingFeature
}

// MissingClusterLabelError aborta o lote inteiro
type MissingClusterLabelError struct {
	Index   int
	AdsetID string
}

func (e *MissingClusterLabelError) Error() string {
	return fmt.Sprintf("%s: record %d (adset %q)", ErrMissingClusterLabel, e.Index, e.AdsetID)
}

func (e *MissingClusterLabelError) Unwrap() error {
	return ErrMissingClusterLabel
}

// OracleError envolve a falha do oráculo de clusterização
type OracleError struct {
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("%s: %v", ErrClusteringOracleUnavailable, e.Err)
}

func (e *OracleError) Unwrap() []error {
	return []error{ErrClusteringOracleUnavailable, e.Err}
}

// SourceError envolve a falha da fonte de relatórios
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", ErrReportingSourceUnavailable, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrReportingSourceUnavailable, e.Err}
}
