package processor

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"sheetlingo/internal/checkpoint"
	"sheetlingo/internal/cli"
	"sheetlingo/internal/memory"
	"sheetlingo/internal/prompt"
	"sheetlingo/internal/sheet"
	"sheetlingo/internal/translate"
)

// Pipeline wires the configured collaborators together and executes one
// translation run from input file to output file.
type Pipeline struct {
	flags  *cli.Flags
	logger *logrus.Logger
	client TransformClient
	runID  string
}

// NewPipeline creates a pipeline from parsed command-line flags.
func NewPipeline(flags *cli.Flags, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
	}
	return &Pipeline{flags: flags, logger: logger}
}

// Run loads the input file or checkpoint, drives every record through
// translation, and writes the output file. Per-record failures end up
// in the summary, not in the returned error; the error covers setup
// problems only. An interrupted run still writes its output.
func (p *Pipeline) Run(ctx context.Context) error {
	apiKey := cli.GetOpenAIKey()
	if apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .sheetlingo.yaml")
	}

	lang, err := sheet.ParseLanguage(p.flags.Language)
	if err != nil {
		return err
	}

	p.runID = ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
	p.logger.WithFields(logrus.Fields{
		"run_id":   p.runID,
		"language": lang.String(),
	}).Info("Translation run starting")

	table, err := p.loadTable(lang)
	if err != nil {
		return err
	}

	prompts, err := p.loadPrompts()
	if err != nil {
		return err
	}

	var mem *memory.Store
	if p.flags.MemoryDB != "" {
		mem, err = memory.Open(p.flags.MemoryDB)
		if err != nil {
			return err
		}
		defer mem.Close()
		if n, err := mem.Count(); err == nil {
			p.logger.WithFields(logrus.Fields{
				"database": p.flags.MemoryDB,
				"entries":  n,
			}).Debug("Translation memory open")
		}
	}

	client := p.client
	if client == nil {
		client = translate.New(translate.Config{
			APIKey:         apiKey,
			Model:          p.flags.OpenAIModel,
			RequestTimeout: p.flags.RequestTimeout,
			Prompts:        prompts,
			Memory:         mem,
			Logger:         p.logger,
		})
	}

	var stepper Stepper
	if p.flags.Debug {
		stepper = NewConsoleStepper(os.Stdin, os.Stderr)
	}

	driver := NewDriver(Config{
		Language:        lang,
		Client:          client,
		Checkpoints:     checkpoint.NewWriter(p.flags.CheckpointDir, lang),
		CheckpointEvery: p.flags.CheckpointEvery,
		Pace:            p.flags.Pace,
		StepMode:        p.flags.Debug,
		Stepper:         stepper,
		Logger:          p.logger,
	})

	res, err := driver.Run(ctx, table)
	if err != nil {
		return err
	}

	outputFile := p.flags.OutputFile
	if outputFile == "" {
		outputFile = cli.DefaultOutputPath(p.flags.InputFile, lang)
	}
	if err := table.WriteFile(outputFile); err != nil {
		p.logger.WithError(err).WithField("checkpoint", res.FinalPath).Error("Output write failed, results remain in the final checkpoint")
		return fmt.Errorf("failed to write output file: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"run_id":    p.runID,
		"state":     res.State.String(),
		"processed": res.Processed,
		"succeeded": res.Succeeded,
		"failed":    res.Failed,
		"skipped":   res.Skipped,
		"elapsed":   res.Elapsed.Round(time.Millisecond).String(),
	}).Info("Translation run finished")

	p.printSummary(table, res, lang, outputFile)
	return nil
}

func (p *Pipeline) loadTable(lang sheet.Language) (*sheet.Table, error) {
	if p.flags.ResumeFrom != "" {
		table, err := checkpoint.Load(p.flags.ResumeFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to load checkpoint: %w", err)
		}
		fields := logrus.Fields{
			"checkpoint": p.flags.ResumeFrom,
			"records":    table.Len(),
		}
		if vi, ok := table.Column(lang.ValueColumn()); ok {
			fields["translated"] = table.CountSet(vi)
		}
		p.logger.WithFields(fields).Info("Resuming from checkpoint")
		return table, nil
	}

	table, err := sheet.ReadFile(p.flags.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load input file: %w", err)
	}
	p.logger.WithFields(logrus.Fields{
		"file":    p.flags.InputFile,
		"records": table.Len(),
	}).Info("Input loaded")
	return table, nil
}

func (p *Pipeline) loadPrompts() (*prompt.Config, error) {
	store := prompt.NewStore(p.flags.PromptsDir)

	if p.flags.Preset != "" {
		cfg, err := store.Preset(p.flags.Preset)
		if err != nil {
			return nil, err
		}
		p.logger.WithField("preset", cfg.Name).Info("Using prompt preset")
		return cfg, nil
	}

	cfg, err := store.Active()
	if err != nil {
		return nil, err
	}
	p.logger.WithField("configuration", cfg.Name).Debug("Using active prompt configuration")
	return cfg, nil
}

func (p *Pipeline) printSummary(table *sheet.Table, res Result, lang sheet.Language, outputFile string) {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Language: %s\n", lang)
	fmt.Printf("Total records: %d\n", res.Total)
	fmt.Printf("Processed: %d\n", res.Processed)
	fmt.Printf("Succeeded: %d\n", res.Succeeded)
	if res.Skipped > 0 {
		fmt.Printf("Skipped (already translated): %d\n", res.Skipped)
	}
	if res.Failed > 0 {
		fmt.Printf("Failed: %d\n", res.Failed)
	}
	if vi, ok := table.Column(lang.ValueColumn()); ok {
		fmt.Printf("Translated values: %d\n", table.CountSet(vi))
	}
	if fi, ok := table.Column(lang.FormulaColumn()); ok {
		fmt.Printf("Translated formulas: %d\n", table.CountSet(fi))
	}
	fmt.Printf("Elapsed: %s\n", res.Elapsed.Round(time.Second))
	if r := rate(res.Succeeded, res.Elapsed); r > 0 {
		fmt.Printf("Rate: %.2f records/sec\n", r)
	}
	if res.State == StateInterrupted && res.FinalPath != "" {
		fmt.Printf("Interrupted; resume with: sheetlingo --resume-from %q\n", res.FinalPath)
	}
	fmt.Printf("Output: %s\n", outputFile)
	fmt.Printf("===========================\n")
}
