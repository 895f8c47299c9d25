package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"sheetlingo/internal/checkpoint"
	"sheetlingo/internal/sheet"
)

// State is the lifecycle of a batch run.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateInterrupted
	StateCompleted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateInterrupted:
		return "interrupted"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Config carries the collaborators and tuning knobs for a batch run.
type Config struct {
	Language    sheet.Language
	Client      TransformClient
	Checkpoints *checkpoint.Writer

	// CheckpointEvery is the number of processed records between
	// progress checkpoints. Defaults to 5.
	CheckpointEvery int

	// Pace is the delay after each record that made a client call,
	// keeping unattended runs under the service's rate limits.
	// Defaults to 500ms. Not applied in step mode.
	Pace time.Duration

	// StepMode pauses before each transform step via the Stepper.
	StepMode bool
	Stepper  Stepper

	Logger *logrus.Logger
}

// Result summarizes a finished run.
type Result struct {
	State     State
	Total     int
	Baseline  int
	Processed int
	Succeeded int
	Failed    int
	Skipped   int
	Elapsed   time.Duration
	FinalPath string
}

// TotalSucceeded returns the number of complete records across the
// whole table: records already complete when the run started plus
// records completed by this run. Checkpoint names carry this number.
func (r Result) TotalSucceeded() int { return r.Baseline + r.Succeeded }

// Driver iterates a table through the record processor in order,
// accumulating counters and writing periodic checkpoints.
type Driver struct {
	cfg   Config
	state State
	now   func() time.Time
}

// NewDriver creates a driver, filling in defaults for unset knobs.
func NewDriver(cfg Config) *Driver {
	if cfg.CheckpointEvery <= 0 {
		cfg.CheckpointEvery = 5
	}
	if cfg.Pace <= 0 {
		cfg.Pace = 500 * time.Millisecond
	}
	if cfg.Stepper == nil {
		cfg.Stepper = NopStepper{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &Driver{cfg: cfg, now: time.Now}
}

// State returns the driver's current lifecycle state.
func (d *Driver) State() State { return d.state }

// Run processes every record of the table in order. It returns an error
// only when the table cannot be bound to the target language;
// per-record failures are absorbed into the result counters. Cancelling
// ctx stops the run between records, after a final checkpoint.
func (d *Driver) Run(ctx context.Context, table *sheet.Table) (Result, error) {
	cols, err := table.Bind(d.cfg.Language)
	if err != nil {
		return Result{}, err
	}

	res := Result{Total: table.Len()}
	for i := 0; i < table.Len(); i++ {
		if recordComplete(table.RecordAt(cols, i)) {
			res.Baseline++
		}
	}

	d.state = StateRunning
	start := d.now()
	proc := NewRecordProcessor(d.cfg.Client, d.cfg.Language, d.cfg.Stepper)

	d.cfg.Logger.WithFields(logrus.Fields{
		"records":  res.Total,
		"complete": res.Baseline,
		"language": d.cfg.Language.String(),
	}).Info("Starting translation run")

	interrupted := false
	for i := 0; i < table.Len(); i++ {
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		outcome, perr := proc.Process(ctx, table, cols, i)
		if errors.Is(perr, ErrAborted) {
			d.cfg.Logger.WithError(perr).WithField("record", i).Info("Run aborted mid-record")
			interrupted = true
			break
		}

		res.Processed++
		switch outcome {
		case OutcomeSkipped:
			res.Skipped++
			d.cfg.Logger.WithField("record", i).Debug("Skipping already-translated record")
		case OutcomeCompleted:
			res.Succeeded++
			d.cfg.Logger.WithFields(logrus.Fields{
				"record":   i,
				"progress": fmt.Sprintf("%d/%d", res.Processed, res.Total),
			}).Info("Translated record")
		case OutcomeFailed:
			res.Failed++
			d.cfg.Logger.WithError(perr).WithField("record", i).Warn("Record translation failed")
		}

		if res.Processed%d.cfg.CheckpointEvery == 0 {
			d.checkpoint(table, checkpoint.KindProgress, &res, d.now().Sub(start))
		}

		if outcome != OutcomeSkipped && !d.cfg.StepMode && i < table.Len()-1 {
			if err := sleepCtx(ctx, d.cfg.Pace); err != nil {
				interrupted = true
				break
			}
		}
	}

	if interrupted {
		d.state = StateInterrupted
	} else {
		d.state = StateCompleted
	}
	res.State = d.state
	res.Elapsed = d.now().Sub(start)
	res.FinalPath = d.checkpoint(table, checkpoint.KindFinal, &res, res.Elapsed)

	return res, nil
}

// checkpoint writes a snapshot and logs the run statistics. A write
// failure is logged and swallowed so the run keeps going; the next
// attempt may land.
func (d *Driver) checkpoint(table *sheet.Table, kind checkpoint.Kind, res *Result, elapsed time.Duration) string {
	path, err := d.cfg.Checkpoints.Write(table, kind, res.TotalSucceeded())
	if err != nil {
		d.cfg.Logger.WithError(err).Error("Checkpoint write failed, continuing run")
		return ""
	}

	fields := logrus.Fields{
		"checkpoint": filepath.Base(path),
		"processed":  res.Processed,
		"succeeded":  res.TotalSucceeded(),
		"total":      res.Total,
	}
	if r := rate(res.Succeeded, elapsed); r > 0 {
		fields["rate_per_sec"] = fmt.Sprintf("%.2f", r)
		if remaining, ok := eta(res.Total, res.Processed, r); ok {
			fields["eta"] = remaining.Round(time.Second).String()
		}
	}
	d.cfg.Logger.WithFields(fields).Info("Checkpoint written")
	return path
}
