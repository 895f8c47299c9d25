package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"sheetlingo/internal/checkpoint"
	"sheetlingo/internal/sheet"
	"sheetlingo/internal/testutil"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDriver(t *testing.T, client TransformClient, opts Config) (*Driver, string) {
	t.Helper()

	dir := t.TempDir()
	opts.Language = mustLanguage(t)
	opts.Client = client
	opts.Checkpoints = checkpoint.NewWriter(dir, opts.Language)
	opts.Logger = quietLogger()
	if opts.Pace == 0 {
		opts.Pace = time.Nanosecond
	}
	if opts.CheckpointEvery == 0 {
		opts.CheckpointEvery = 100
	}
	return NewDriver(opts), dir
}

func TestDriverRunCompletesAllRecords(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{
		{"Total assets", `="Total assets"&X`},
		{"", ""},
		{"Revenue", ""},
	})

	client := &testutil.MockTransformClient{
		Translations: map[string]string{"Total assets": "Bates totale"},
	}
	driver, dir := newTestDriver(t, client, Config{})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.State != StateCompleted {
		t.Errorf("State = %v, want %v", res.State, StateCompleted)
	}
	if driver.State() != StateCompleted {
		t.Errorf("Driver.State() = %v, want %v", driver.State(), StateCompleted)
	}
	if res.Total != 3 || res.Processed != 3 {
		t.Errorf("Total/Processed = %d/%d, want 3/3", res.Total, res.Processed)
	}
	if res.Succeeded != 2 || res.Skipped != 1 || res.Failed != 0 {
		t.Errorf("Succeeded/Skipped/Failed = %d/%d/%d, want 2/1/0", res.Succeeded, res.Skipped, res.Failed)
	}
	if res.Baseline != 1 {
		t.Errorf("Baseline = %d, want 1 for the vacuously complete record", res.Baseline)
	}
	if res.TotalSucceeded() != 3 {
		t.Errorf("TotalSucceeded() = %d, want 3", res.TotalSucceeded())
	}

	if res.FinalPath == "" {
		t.Fatal("No final checkpoint path")
	}
	if base := filepath.Base(res.FinalPath); !strings.HasPrefix(base, "final_afrikaans_3_") {
		t.Errorf("Final checkpoint name = %q, want final_afrikaans_3_ prefix", base)
	}
	if _, err := os.Stat(res.FinalPath); err != nil {
		t.Errorf("Final checkpoint missing: %v", err)
	}

	infos, err := checkpoint.List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(infos) != 1 {
		t.Errorf("Expected only the final checkpoint, found %d files", len(infos))
	}

	lang := mustLanguage(t)
	cols, err := table.Bind(lang)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if rec := table.RecordAt(cols, 2); rec.TargetValue.Value != "mock translation of Revenue" {
		t.Errorf("Record 2 value = %q", rec.TargetValue.Value)
	}
	if rec := table.RecordAt(cols, 2); rec.TargetFormula.Set {
		t.Error("Record 2 gained a formula cell")
	}
}

func TestDriverCounterCorrectness(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{
		{"Total assets", `="Total assets"&X`},
		{"", ""},
		{"Revenue", ""},
	})

	client := &testutil.MockTransformClient{
		ValueErrors: map[string]error{"Total assets": fmt.Errorf("transport failure")},
	}
	driver, _ := newTestDriver(t, client, Config{})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Processed != 3 {
		t.Errorf("Processed = %d, want 3", res.Processed)
	}
	if res.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", res.Succeeded)
	}
	if res.Failed != 1 {
		t.Errorf("Failed = %d, want 1", res.Failed)
	}
	if res.State != StateCompleted {
		t.Errorf("State = %v, want %v", res.State, StateCompleted)
	}

	cols, err := table.Bind(mustLanguage(t))
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	rec := table.RecordAt(cols, 0)
	if rec.TargetValue.Set {
		t.Errorf("Failed record gained a value: %q", rec.TargetValue.Value)
	}
	if !rec.TargetFormula.Set {
		t.Error("Formula step skipped after value failure")
	}
}

func TestDriverCheckpointCadence(t *testing.T) {
	rows := make([][2]string, 7)
	for i := range rows {
		rows[i] = [2]string{fmt.Sprintf("Item %d", i+1), ""}
	}
	table := testutil.BuildTestTable(t, rows)

	client := &testutil.MockTransformClient{}
	driver, dir := newTestDriver(t, client, Config{CheckpointEvery: 2})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Succeeded != 7 {
		t.Fatalf("Succeeded = %d, want 7", res.Succeeded)
	}

	infos, err := checkpoint.List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(infos) != 4 {
		t.Fatalf("Expected 3 progress + 1 final checkpoints, found %d", len(infos))
	}

	// Newest first: the final checkpoint, then progress at 6, 4, 2.
	if infos[0].Kind != checkpoint.KindFinal || infos[0].Succeeded != 7 {
		t.Errorf("infos[0] = %s/%d, want final/7", infos[0].Kind, infos[0].Succeeded)
	}
	wantProgress := []int{6, 4, 2}
	for i, want := range wantProgress {
		info := infos[i+1]
		if info.Kind != checkpoint.KindProgress || info.Succeeded != want {
			t.Errorf("infos[%d] = %s/%d, want progress/%d", i+1, info.Kind, info.Succeeded, want)
		}
	}
}

func TestDriverResumeSkipsCompletedRecords(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{
		{"First", ""},
		{"Second", ""},
	})
	lang := mustLanguage(t)
	cols, err := table.Bind(lang)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	table.SetTargetValue(cols, 0, "Eerste")

	client := &testutil.MockTransformClient{}
	driver, _ := newTestDriver(t, client, Config{})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"value: Second"}
	if len(client.Calls) != 1 || client.Calls[0] != want[0] {
		t.Errorf("Calls = %v, want %v", client.Calls, want)
	}
	if res.Baseline != 1 || res.Skipped != 1 || res.Succeeded != 1 {
		t.Errorf("Baseline/Skipped/Succeeded = %d/%d/%d, want 1/1/1", res.Baseline, res.Skipped, res.Succeeded)
	}
	if res.TotalSucceeded() != 2 {
		t.Errorf("TotalSucceeded() = %d, want 2", res.TotalSucceeded())
	}
	if base := filepath.Base(res.FinalPath); !strings.HasPrefix(base, "final_afrikaans_2_") {
		t.Errorf("Final checkpoint name = %q, want final_afrikaans_2_ prefix", base)
	}
}

func TestDriverSecondRunMakesNoCalls(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{
		{"Total assets", `="Total assets"&X`},
		{"Revenue", ""},
	})

	first := &testutil.MockTransformClient{
		Translations: map[string]string{"Total assets": "Bates totale"},
	}
	driver, _ := newTestDriver(t, first, Config{})
	if _, err := driver.Run(context.Background(), table); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	before := tableBytes(t, table)

	second := &testutil.MockTransformClient{}
	driver2, _ := newTestDriver(t, second, Config{})
	res, err := driver2.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if len(second.Calls) != 0 {
		t.Errorf("Second run made client calls: %v", second.Calls)
	}
	if res.Skipped != 2 || res.Succeeded != 0 {
		t.Errorf("Skipped/Succeeded = %d/%d, want 2/0", res.Skipped, res.Succeeded)
	}
	if res.Baseline != 2 {
		t.Errorf("Baseline = %d, want 2", res.Baseline)
	}
	if after := tableBytes(t, table); string(before) != string(after) {
		t.Error("Second run modified the table")
	}
}

type cancelingClient struct {
	*testutil.MockTransformClient
	cancel context.CancelFunc
}

func (c *cancelingClient) TranslateValue(ctx context.Context, value string, lang sheet.Language) (string, error) {
	out, err := c.MockTransformClient.TranslateValue(ctx, value, lang)
	c.cancel()
	return out, err
}

func TestDriverInterruptStopsBetweenRecords(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{
		{"First", ""},
		{"Second", ""},
		{"Third", ""},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := &cancelingClient{MockTransformClient: &testutil.MockTransformClient{}, cancel: cancel}
	driver, _ := newTestDriver(t, client, Config{})

	res, err := driver.Run(ctx, table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.State != StateInterrupted {
		t.Errorf("State = %v, want %v", res.State, StateInterrupted)
	}
	if res.Processed != 1 || res.Succeeded != 1 {
		t.Errorf("Processed/Succeeded = %d/%d, want 1/1", res.Processed, res.Succeeded)
	}
	if n := client.ValueCalls(); n != 1 {
		t.Errorf("ValueCalls() = %d, want 1 before the interrupt", n)
	}
	if res.FinalPath == "" {
		t.Error("Interrupted run did not write a final checkpoint")
	}
	if base := filepath.Base(res.FinalPath); !strings.HasPrefix(base, "final_afrikaans_1_") {
		t.Errorf("Final checkpoint name = %q, want final_afrikaans_1_ prefix", base)
	}
}

func TestDriverMidRecordCancelNotCounted(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{{"First", ""}})

	client := &testutil.MockTransformClient{
		ValueErrors: map[string]error{"First": context.Canceled},
	}
	driver, _ := newTestDriver(t, client, Config{})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.State != StateInterrupted {
		t.Errorf("State = %v, want %v", res.State, StateInterrupted)
	}
	if res.Processed != 0 || res.Failed != 0 {
		t.Errorf("Processed/Failed = %d/%d, want 0/0 for an aborted record", res.Processed, res.Failed)
	}
	if base := filepath.Base(res.FinalPath); !strings.HasPrefix(base, "final_afrikaans_0_") {
		t.Errorf("Final checkpoint name = %q, want final_afrikaans_0_ prefix", base)
	}
}

func TestDriverCheckpointFailureContinues(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{
		{"First", ""},
		{"Second", ""},
	})

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	testutil.CreateTestFile(t, blocker, []byte("not a directory"))

	client := &testutil.MockTransformClient{}
	driver := NewDriver(Config{
		Language:        mustLanguage(t),
		Client:          client,
		Checkpoints:     checkpoint.NewWriter(filepath.Join(blocker, "nested"), mustLanguage(t)),
		CheckpointEvery: 1,
		Pace:            time.Nanosecond,
		Logger:          quietLogger(),
	})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.State != StateCompleted {
		t.Errorf("State = %v, want %v despite checkpoint failures", res.State, StateCompleted)
	}
	if res.Processed != 2 || res.Succeeded != 2 {
		t.Errorf("Processed/Succeeded = %d/%d, want 2/2", res.Processed, res.Succeeded)
	}
	if res.FinalPath != "" {
		t.Errorf("FinalPath = %q, want empty when the write fails", res.FinalPath)
	}
}

func TestDriverBindFailure(t *testing.T) {
	table, err := sheet.NewTable([]string{"Other"})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	driver, _ := newTestDriver(t, &testutil.MockTransformClient{}, Config{})

	if _, err := driver.Run(context.Background(), table); err == nil {
		t.Error("Expected error for a table without source columns")
	}
	if driver.State() != StateNotStarted {
		t.Errorf("State = %v, want %v", driver.State(), StateNotStarted)
	}
}

func TestDriverEmptyTable(t *testing.T) {
	table := testutil.BuildTestTable(t, nil)

	client := &testutil.MockTransformClient{}
	driver, _ := newTestDriver(t, client, Config{})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.State != StateCompleted || res.Processed != 0 {
		t.Errorf("State/Processed = %v/%d, want completed/0", res.State, res.Processed)
	}
	if len(client.Calls) != 0 {
		t.Errorf("Expected no calls, got %v", client.Calls)
	}
	if base := filepath.Base(res.FinalPath); !strings.HasPrefix(base, "final_afrikaans_0_") {
		t.Errorf("Final checkpoint name = %q, want final_afrikaans_0_ prefix", base)
	}
}

func TestDriverStepperAbortInterrupts(t *testing.T) {
	table := testutil.BuildTestTable(t, [][2]string{{"First", ""}})

	client := &testutil.MockTransformClient{}
	driver, _ := newTestDriver(t, client, Config{
		StepMode: true,
		Stepper:  refusingStepper{err: io.EOF},
	})

	res, err := driver.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.State != StateInterrupted {
		t.Errorf("State = %v, want %v", res.State, StateInterrupted)
	}
	if res.Processed != 0 {
		t.Errorf("Processed = %d, want 0", res.Processed)
	}
	if len(client.Calls) != 0 {
		t.Errorf("Expected no calls, got %v", client.Calls)
	}
}
