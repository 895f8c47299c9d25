package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Phase names the transform step a record is about to enter.
type Phase string

const (
	PhaseTranslate Phase = "translate value"
	PhaseRewrite   Phase = "rewrite formula"
)

// Stepper gates the transition into each transform step. The record
// processor calls Advance before every client call; a non-nil error
// aborts the run.
type Stepper interface {
	Advance(ctx context.Context, phase Phase, index int) error
}

// NopStepper advances without pausing. It is the stepper for unattended
// runs.
type NopStepper struct{}

// Advance implements Stepper.
func (NopStepper) Advance(context.Context, Phase, int) error { return nil }

// ConsoleStepper pauses before each transform step until the user
// presses Enter, for debugging a run record by record.
type ConsoleStepper struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsoleStepper creates a stepper reading confirmations from in and
// writing prompts to out.
func NewConsoleStepper(in io.Reader, out io.Writer) *ConsoleStepper {
	return &ConsoleStepper{scanner: bufio.NewScanner(in), out: out}
}

// Advance implements Stepper. It returns io.EOF when the input closes,
// which ends the run the same way an interrupt does.
func (s *ConsoleStepper) Advance(ctx context.Context, phase Phase, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "[step] record %d, next: %s (press Enter to continue) ", index, phase)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	return nil
}
