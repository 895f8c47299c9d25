package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sheetlingo/internal/sheet"
)

// Outcome classifies what Process did with a single record.
type Outcome int

const (
	// OutcomeSkipped means the record needed no work.
	OutcomeSkipped Outcome = iota
	// OutcomeCompleted means every applicable transform step succeeded.
	OutcomeCompleted
	// OutcomeFailed means at least one transform step failed.
	OutcomeFailed
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrAborted wraps the cause when processing stops mid-record, either
// through context cancellation or a stepper refusing to advance. The
// driver treats it as an interrupt, not a per-record failure.
var ErrAborted = errors.New("run aborted")

// TransformClient is the translation surface the record processor
// drives. *translate.Translator implements it.
type TransformClient interface {
	TranslateValue(ctx context.Context, value string, lang sheet.Language) (string, error)
	RewriteFormula(ctx context.Context, value, translated, formula string, lang sheet.Language) (string, error)
}

// RecordProcessor runs the per-record transform steps against a bound
// table. It holds no per-record state and may be reused across records
// and runs.
type RecordProcessor struct {
	client  TransformClient
	lang    sheet.Language
	stepper Stepper
}

// NewRecordProcessor creates a record processor for the given language.
// A nil stepper advances without pausing.
func NewRecordProcessor(client TransformClient, lang sheet.Language, stepper Stepper) *RecordProcessor {
	if stepper == nil {
		stepper = NopStepper{}
	}
	return &RecordProcessor{client: client, lang: lang, stepper: stepper}
}

// Process runs the record at index through the transform steps it still
// needs. Already-complete records are skipped without any client call.
// A failed value translation leaves the value cell unwritten; a failed
// formula rewrite writes the source formula with the marker prepended so
// the output stays loadable. Partial writes are kept, never rolled back.
func (p *RecordProcessor) Process(ctx context.Context, table *sheet.Table, cols sheet.Columns, index int) (Outcome, error) {
	rec := table.RecordAt(cols, index)
	if recordComplete(rec) {
		return OutcomeSkipped, nil
	}

	var failure error

	translated := ""
	if rec.TargetValue.Set {
		translated = rec.TargetValue.Value
	}

	if rec.SourceValue != "" {
		if err := p.stepper.Advance(ctx, PhaseTranslate, index); err != nil {
			return OutcomeFailed, fmt.Errorf("%w: %v", ErrAborted, err)
		}

		out, err := p.client.TranslateValue(ctx, rec.SourceValue, p.lang)
		switch {
		case err == nil:
			translated = strings.TrimSpace(out)
			table.SetTargetValue(cols, index, translated)
		case errors.Is(err, context.Canceled):
			return OutcomeFailed, fmt.Errorf("%w: %v", ErrAborted, err)
		default:
			failure = fmt.Errorf("value translation failed: %w", err)
		}
	}

	if rec.SourceFormula != "" {
		if !hasQuotedText(rec.SourceFormula) {
			// A formula without quoted literals rewrites to itself.
			table.SetTargetFormula(cols, index, sheet.FormulaMarker+rec.SourceFormula)
		} else {
			if err := p.stepper.Advance(ctx, PhaseRewrite, index); err != nil {
				return OutcomeFailed, fmt.Errorf("%w: %v", ErrAborted, err)
			}

			out, err := p.client.RewriteFormula(ctx, rec.SourceValue, translated, rec.SourceFormula, p.lang)
			switch {
			case err == nil:
				formula := strings.TrimSpace(out)
				if !strings.HasPrefix(formula, sheet.FormulaMarker) {
					formula = sheet.FormulaMarker + formula
				}
				table.SetTargetFormula(cols, index, formula)
			case errors.Is(err, context.Canceled):
				return OutcomeFailed, fmt.Errorf("%w: %v", ErrAborted, err)
			default:
				table.SetTargetFormula(cols, index, sheet.FormulaMarker+rec.SourceFormula)
				if failure == nil {
					failure = fmt.Errorf("formula rewrite failed: %w", err)
				}
			}
		}
	}

	if failure != nil {
		return OutcomeFailed, failure
	}
	return OutcomeCompleted, nil
}

// recordComplete reports whether the record needs no further transform
// calls. A formula cell holding exactly the marker-prefixed source
// formula counts as incomplete when the formula has quoted literals:
// that is the fallback written after a failed rewrite, and a later run
// should retry it.
func recordComplete(rec sheet.Record) bool {
	if rec.SourceValue == "" && rec.SourceFormula == "" {
		return true
	}
	if !rec.TargetValue.Set {
		return false
	}
	if rec.SourceFormula == "" {
		return true
	}
	if !rec.TargetFormula.Set {
		return false
	}
	if rec.TargetFormula.Value == sheet.FormulaMarker+rec.SourceFormula && hasQuotedText(rec.SourceFormula) {
		return false
	}
	return true
}

// hasQuotedText reports whether the formula contains at least one
// non-empty double-quoted span. Only those spans change in a rewrite.
func hasQuotedText(formula string) bool {
	inQuote := false
	chars := 0
	for _, r := range formula {
		if r == '"' {
			if inQuote && chars > 0 {
				return true
			}
			inQuote = !inQuote
			chars = 0
			continue
		}
		if inQuote {
			chars++
		}
	}
	return false
}
