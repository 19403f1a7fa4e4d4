package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"suitegate.dev/pkg/suitegate/internal/adapter"
	"suitegate.dev/pkg/suitegate/internal/controller"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// Fetch defaults used when no option overrides them.
const (
	DefaultFetchTimeout   = 30 * time.Second
	DefaultFetchRetries   = 3
	defaultRetryBaseDelay = 200 * time.Millisecond
	maxRetryDelay         = 5 * time.Second
)

// StoreOpener opens the configured baseline store. It is called per
// operation so configuration is read at run time.
type StoreOpener func(ctx context.Context) (adapter.BaselineStore, error)

// CompareArgs contains the arguments for gating one suite run.
type CompareArgs struct {
	Log         m.Path
	Format      string
	Ref         m.BaselineRef
	Policy      m.TolerancePolicy
	Report      m.Path
	MetricsFile m.Path
	Diff        bool
	// Promote records the current snapshot as the new baseline when the
	// verdict is green.
	Promote bool
}

// ParseArgs contains the arguments for normalizing a native log.
type ParseArgs struct {
	Log    m.Path
	Format string
	Suite  string
	Out    m.Path
}

// PromoteArgs contains the arguments for an explicit baseline write.
type PromoteArgs struct {
	Snapshot m.Path
	Format   string
	Verdict  m.Path
	Ref      m.BaselineRef
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Compare(ctx context.Context, args CompareArgs) (m.GateVerdict, error)
	Parse(ctx context.Context, args ParseArgs) (m.Snapshot, error)
	Promote(ctx context.Context, args PromoteArgs) error
	Show(ctx context.Context, ref m.BaselineRef) error
	History(ctx context.Context, ref m.BaselineRef, limit int) error
}

// WorkflowOption customizes a Workflow.
type WorkflowOption func(*workflow)

// WithFetchTimeout bounds fetching the current and baseline snapshots.
func WithFetchTimeout(timeout time.Duration) WorkflowOption {
	return func(w *workflow) {
		if timeout > 0 {
			w.fetchTimeout = timeout
		}
	}
}

// WithFetchRetries sets how often a failed baseline load is retried.
func WithFetchRetries(retries uint64) WorkflowOption {
	return func(w *workflow) {
		w.fetchRetries = retries
	}
}

// WithRetryBaseDelay sets the first backoff step between baseline loads.
func WithRetryBaseDelay(delay time.Duration) WorkflowOption {
	return func(w *workflow) {
		if delay > 0 {
			w.retryBaseDelay = delay
		}
	}
}

type workflow struct {
	artifacts adapter.ArtifactAdapter
	openStore StoreOpener
	metrics   adapter.MetricsExporter
	ui        controller.UI
	gate      Gate

	fetchTimeout   time.Duration
	fetchRetries   uint64
	retryBaseDelay time.Duration
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	artifacts adapter.ArtifactAdapter,
	openStore StoreOpener,
	metrics adapter.MetricsExporter,
	ui controller.UI,
	gate Gate,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		artifacts:      artifacts,
		openStore:      openStore,
		metrics:        metrics,
		ui:             ui,
		gate:           gate,
		fetchTimeout:   DefaultFetchTimeout,
		fetchRetries:   DefaultFetchRetries,
		retryBaseDelay: defaultRetryBaseDelay,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Compare gates the run at args.Log against the stored baseline. A red
// verdict is returned together with ErrGateFailed.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) (m.GateVerdict, error) {
	if err := w.ui.Start(ctx, controller.WithCompareMode(), controller.WithDiff(args.Diff)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.GateVerdict{}, err
	}
	defer w.ui.Close(ctx)

	store, err := w.openStore(ctx)
	if err != nil {
		slog.Error("Failed to open baseline store", "error", err)
		return m.GateVerdict{}, fmt.Errorf("%w: open baseline store: %w", ErrComparisonUnavailable, err)
	}
	defer closeStore(store)

	current, baseline, err := w.fetch(ctx, store, args)
	if err != nil {
		return m.GateVerdict{}, err
	}

	verdict, err := w.gate.Evaluate(current, baseline, args.Policy)
	if err != nil {
		slog.Error("Failed to evaluate gate", "ref", args.Ref.Key(), "error", err)
		return m.GateVerdict{}, fmt.Errorf("evaluate gate: %w", err)
	}

	slog.Info("gate evaluated",
		"ref", args.Ref.Key(),
		"run_id", verdict.RunID(),
		"green", verdict.Green(),
		"regressed", len(verdict.Delta().Regressed),
		"fixed", len(verdict.Delta().Fixed),
		"count_verdict", verdict.Count().Verdict,
	)

	if err := w.publish(ctx, args, verdict); err != nil {
		return verdict, err
	}

	if err := w.ui.DisplayVerdict(ctx, verdict); err != nil {
		slog.Error("Failed to display verdict", "error", err)
		return verdict, fmt.Errorf("display: %w", err)
	}

	if !verdict.Green() {
		w.ui.Wait(ctx)
		return verdict, fmt.Errorf("%w: %s", ErrGateFailed, args.Ref.Key())
	}

	if args.Promote {
		if err := w.save(ctx, store, args.Ref, current); err != nil {
			return verdict, err
		}
	}

	w.ui.Wait(ctx)

	return verdict, nil
}

// fetch reads the current snapshot and loads the baseline in parallel.
// Neither result is used unless both succeed.
func (w *workflow) fetch(ctx context.Context, store adapter.BaselineStore, args CompareArgs) (m.Snapshot, m.Baseline, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, w.fetchTimeout)
	defer cancel()

	var (
		current  m.Snapshot
		baseline m.Baseline
	)

	group, groupCtx := errgroup.WithContext(fetchCtx)

	group.Go(func() error {
		snapshot, err := w.artifacts.ReadSnapshot(groupCtx, args.Log, args.Format, args.Ref.Suite)
		if err != nil {
			return fmt.Errorf("read current snapshot: %w", err)
		}

		current = snapshot

		return nil
	})

	group.Go(func() error {
		loaded, err := w.loadBaseline(groupCtx, store, args.Ref)
		if err != nil {
			return fmt.Errorf("load baseline %s: %w", args.Ref, err)
		}

		baseline = loaded

		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to fetch snapshots", "ref", args.Ref.Key(), "error", err)

		if errors.Is(err, m.ErrDataError) {
			return m.Snapshot{}, m.Baseline{}, err
		}

		return m.Snapshot{}, m.Baseline{}, fmt.Errorf("%w: %w", ErrComparisonUnavailable, err)
	}

	return current, baseline, nil
}

// loadBaseline retries transient store failures with capped exponential
// backoff. Data errors are not retried.
func (w *workflow) loadBaseline(ctx context.Context, store adapter.BaselineStore, ref m.BaselineRef) (m.Baseline, error) {
	backoff, err := retry.NewExponential(w.retryBaseDelay)
	if err != nil {
		return m.Baseline{}, err
	}

	backoff = retry.WithCappedDuration(maxRetryDelay, backoff)
	backoff = retry.WithMaxRetries(w.fetchRetries, backoff)

	var baseline m.Baseline

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		loaded, err := store.Load(ctx, ref)
		if err != nil {
			if errors.Is(err, m.ErrDataError) {
				return err
			}

			slog.Warn("baseline load failed", "ref", ref.Key(), "attempt", attempt, "error", err)

			return retry.RetryableError(err)
		}

		baseline = loaded

		return nil
	})
	if err != nil {
		return m.Baseline{}, err
	}

	return baseline, nil
}

func (w *workflow) publish(ctx context.Context, args CompareArgs, verdict m.GateVerdict) error {
	if args.Report != "" {
		if err := w.artifacts.WriteVerdict(ctx, args.Report, verdict); err != nil {
			return fmt.Errorf("write verdict report: %w", err)
		}
	}

	if args.MetricsFile != "" {
		if err := w.metrics.ExportVerdict(ctx, args.MetricsFile, verdict); err != nil {
			return fmt.Errorf("export metrics: %w", err)
		}
	}

	return nil
}

func (w *workflow) save(ctx context.Context, store adapter.BaselineStore, ref m.BaselineRef, snapshot m.Snapshot) error {
	if err := store.Save(ctx, ref, snapshot); err != nil {
		slog.Error("Failed to promote baseline", "ref", ref.Key(), "error", err)
		return fmt.Errorf("promote baseline: %w", err)
	}

	slog.Info("baseline promoted", "ref", ref.Key(), "run_id", snapshot.RunID)

	if err := w.ui.DisplayPromotion(ctx, ref, snapshot); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Parse normalizes a native log and optionally writes it to args.Out.
func (w *workflow) Parse(ctx context.Context, args ParseArgs) (m.Snapshot, error) {
	if err := w.ui.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.Snapshot{}, err
	}
	defer w.ui.Close(ctx)

	snapshot, err := w.artifacts.ReadSnapshot(ctx, args.Log, args.Format, args.Suite)
	if err != nil {
		return m.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	if err := ValidateSnapshot(snapshot); err != nil {
		return m.Snapshot{}, err
	}

	if args.Out != "" {
		if err := w.artifacts.WriteSnapshot(ctx, args.Out, snapshot); err != nil {
			return m.Snapshot{}, fmt.Errorf("write snapshot: %w", err)
		}
	}

	if err := w.ui.DisplaySnapshot(ctx, snapshot); err != nil {
		return m.Snapshot{}, fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)

	return snapshot, nil
}

// Promote records a snapshot as the baseline for args.Ref. It refuses
// unless the verdict report is green, was computed for the same ref, and
// still describes the snapshot when judged against the stored baseline.
func (w *workflow) Promote(ctx context.Context, args PromoteArgs) error {
	if err := w.ui.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	report, err := w.artifacts.ReadVerdict(ctx, args.Verdict)
	if err != nil {
		return fmt.Errorf("read verdict: %w", err)
	}

	if !report.Green {
		return fmt.Errorf("%w: verdict for %s is red", ErrPromotionRefused, report.Ref)
	}

	if report.Ref != args.Ref {
		return fmt.Errorf("%w: verdict was computed for %s, not %s", ErrPromotionRefused, report.Ref, args.Ref)
	}

	snapshot, err := w.artifacts.ReadSnapshot(ctx, args.Snapshot, args.Format, args.Ref.Suite)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	store, err := w.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open baseline store: %w", err)
	}
	defer closeStore(store)

	baseline, err := w.loadBaseline(ctx, store, args.Ref)
	if err != nil {
		return fmt.Errorf("load baseline %s: %w", args.Ref, err)
	}

	verdict, err := w.gate.Evaluate(snapshot, baseline, report.Policy)
	if err != nil {
		return fmt.Errorf("evaluate gate: %w", err)
	}

	if !verdict.Green() || !sameDelta(verdict.Delta(), report.Delta) {
		slog.Warn("verdict does not match snapshot", "ref", args.Ref.Key(), "snapshot", args.Snapshot, "verdict", args.Verdict)
		return fmt.Errorf("%w: verdict %s does not describe snapshot %s against the current baseline", ErrPromotionRefused, args.Verdict, args.Snapshot)
	}

	if err := w.save(ctx, store, args.Ref, snapshot); err != nil {
		return err
	}

	w.ui.Wait(ctx)

	return nil
}

func sameDelta(a, b m.ClassifiedDelta) bool {
	return slices.Equal(a.Regressed, b.Regressed) &&
		slices.Equal(a.Fixed, b.Fixed) &&
		slices.Equal(a.StillFailing, b.StillFailing)
}

// Show displays the baseline stored for ref.
func (w *workflow) Show(ctx context.Context, ref m.BaselineRef) error {
	if err := w.ui.Start(ctx, controller.WithInspectMode()); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	store, err := w.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open baseline store: %w", err)
	}
	defer closeStore(store)

	baseline, err := store.Load(ctx, ref)
	if err != nil {
		slog.Error("Failed to load baseline", "ref", ref.Key(), "error", err)
		return fmt.Errorf("load baseline %s: %w", ref, err)
	}

	if err := w.ui.DisplayBaseline(ctx, baseline); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)

	return nil
}

// History displays up to limit promoted baselines for ref, newest first.
func (w *workflow) History(ctx context.Context, ref m.BaselineRef, limit int) error {
	if err := w.ui.Start(ctx, controller.WithInspectMode()); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	store, err := w.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open baseline store: %w", err)
	}
	defer closeStore(store)

	records, err := store.History(ctx, ref, limit)
	if err != nil {
		slog.Error("Failed to read baseline history", "ref", ref.Key(), "error", err)
		return fmt.Errorf("baseline history %s: %w", ref, err)
	}

	if err := w.ui.DisplayHistory(ctx, ref, records); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)

	return nil
}

func closeStore(store adapter.BaselineStore) {
	if err := store.Close(); err != nil {
		slog.Warn("failed to close baseline store", "error", err)
	}
}
