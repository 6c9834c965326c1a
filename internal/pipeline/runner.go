// Package pipeline runs the normalization engine over record batches:
// classify → detect FX needs → validate/repair rates → convert →
// rescale, with per-item failure isolation and a shared memoization
// cache.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"indicator-engine/internal/cache"
	"indicator-engine/internal/classify"
	"indicator-engine/internal/config"
	"indicator-engine/internal/domain"
	"indicator-engine/internal/fx"
	"indicator-engine/internal/observability"
	"indicator-engine/internal/rescale"
)

// classification is the cached outcome of the classifier for one
// (name, unit) pair.
type classification struct {
	Bucket domain.Bucket
	Rule   string
}

// Runner executes normalization passes. Items in a batch are independent;
// the only shared mutable state is the cache, which serializes its own
// mutations, so per-item work is order-independent by construction.
type Runner struct {
	cfg     config.Config
	cache   *cache.Cache
	metrics *observability.Metrics
	clock   func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithMetrics wires Prometheus metrics into the runner.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithCache supplies an explicit cache instance, letting tests run with
// isolated, predictable cache contents.
func WithCache(c *cache.Cache) Option {
	return func(r *Runner) { r.cache = c }
}

// WithClock injects a clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(r *Runner) { r.clock = clock }
}

// NewRunner creates a runner with its own scoped cache sized from the
// configuration.
func NewRunner(cfg config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:   cfg,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = cache.New(cfg.CacheMaxSize, time.Duration(cfg.CacheTTLSecs)*time.Second)
	}
	return r
}

// Run normalizes a batch against the given rate table. Input records are
// never mutated; output order follows input order. One bad record never
// aborts the rest: per-item failures land in Result.Errors keyed by
// record id.
func (r *Runner) Run(ctx context.Context, records []domain.IndicatorRecord, table domain.FXTable) (*Result, error) {
	start := r.clock()
	res := &Result{RunID: uuid.NewString()}

	// Rate table sanity check, with optional repair. Corrections are the
	// audit trail; issues surface as batch-level warnings.
	checked, corrections, vres := fx.ValidateAndCorrect(table, r.cfg.AutoCorrectFXRates)
	res.Corrections = corrections
	for _, issue := range vres.Errors {
		res.Warnings = append(res.Warnings, Warning{Message: "fx table: " + issue.Message})
	}
	for _, issue := range vres.Warnings {
		res.Warnings = append(res.Warnings, Warning{Message: "fx table: " + issue.Message})
	}
	if r.metrics != nil {
		for range corrections {
			r.metrics.RateCorrections.Inc()
		}
		for range vres.Errors {
			r.metrics.RateIssues.WithLabelValues(string(fx.SeverityError)).Inc()
		}
		for range vres.Warnings {
			r.metrics.RateIssues.WithLabelValues(string(fx.SeverityWarning)).Inc()
		}
	}

	items := make([]*workItem, len(records))
	for i, rec := range records {
		items[i] = &workItem{
			rec:    rec,
			value:  rec.Value,
			unit:   rec.Unit,
			exempt: isExempt(rec, r.cfg.Exemptions),
		}
		if items[i].exempt && r.metrics != nil {
			r.metrics.RecordsExempted.Inc()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.classifyStage(items)
	r.detectStage(items)
	runStage("decumulate", items, r.decumulateItem)
	runStage("convert", items, func(it *workItem) error { return r.convertItem(it, checked) })
	runStage("magnitude", items, r.magnitudeItem)
	runStage("rescale", items, r.rescaleItem)
	peerCheck(items)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.collect(items, res)
	if r.metrics != nil {
		r.metrics.RecordRun("ok", r.clock().Sub(start).Seconds(), len(records))
	}
	return res, nil
}

// classifyStage assigns buckets, memoized per (name, unit). Exempted
// items are still classified: classification is pure and the bucket is
// useful downstream diagnostics either way.
func (r *Runner) classifyStage(items []*workItem) {
	for _, it := range items {
		key := cache.Key("classify", it.rec.Name, it.rec.Unit)
		if v, ok := r.cache.Get(key); ok {
			if c, ok := v.(classification); ok {
				it.bucket, it.rule = c.Bucket, c.Rule
				if r.metrics != nil {
					r.metrics.CacheHits.Inc()
				}
				continue
			}
		}
		if r.metrics != nil {
			r.metrics.CacheMisses.Inc()
		}
		bucket, rule := classify.Match(it.rec)
		r.cache.Set(key, classification{Bucket: bucket, Rule: rule})
		it.bucket, it.rule = bucket, rule
	}

	for _, it := range items {
		it.explain.Domain = it.bucket
		if it.rule == "" && !it.exempt {
			it.explain.Warnings = append(it.explain.Warnings,
				"no classification rule matched, defaulting to other")
		}
	}
}

// detectStage attaches FX detections, memoized per (unit, currencyCode).
func (r *Runner) detectStage(items []*workItem) {
	for _, it := range items {
		if it.exempt {
			continue
		}
		key := cache.Key("detect", it.rec.Unit, it.rec.CurrencyCode)
		if v, ok := r.cache.Get(key); ok {
			if det, ok := v.(domain.FXDetection); ok {
				it.det = det
				if r.metrics != nil {
					r.metrics.CacheHits.Inc()
				}
				continue
			}
		}
		if r.metrics != nil {
			r.metrics.CacheMisses.Inc()
		}
		it.det = fx.Detect(it.rec)
		r.cache.Set(key, it.det)
	}
}

// decumulateItem replaces a year-to-date cumulative flow with its latest
// per-period value before any scaling happens.
func (r *Runner) decumulateItem(it *workItem) error {
	if it.bucket != domain.BucketMonetaryFlow {
		return nil
	}
	adjusted, ok := cumulativeAdjust(it.rec)
	if ok {
		it.value = adjusted
		it.explain.Warnings = append(it.explain.Warnings,
			"cumulative year-to-date series detected, de-cumulated to per-period value")
	}
	return nil
}

// convertItem applies currency conversion where the bucket policy calls
// for it. For rate-style prices only the price component converts: the
// unit keeps its physical denominator ("EUR/MWh" → "USD/MWh").
func (r *Runner) convertItem(it *workItem, table domain.FXTable) error {
	target := strings.ToUpper(r.cfg.TargetCurrency)
	if !fx.Needs(it.bucket, it.det) || it.det.CurrencyCode == target {
		return nil
	}

	converted, err := fx.Convert(it.value, it.det.CurrencyCode, target, table)
	if err != nil {
		return err
	}
	rate, err := fx.Rate(it.det.CurrencyCode, target, table)
	if err != nil {
		return err
	}

	it.value = converted
	it.explain.Currency = it.det.CurrencyCode
	it.explain.FXRate = rate
	it.explain.FXSource = strings.ToUpper(table.Base)
	if it.det.PricePattern == domain.PricePatternPerUnit {
		it.unit = rewriteUnitCurrency(it.unit, it.det.CurrencyCode, target)
	}
	if r.metrics != nil {
		r.metrics.FXConversions.Inc()
	}
	return nil
}

// magnitudeItem rescales absolute monetary amounts into the target
// magnitude and canonicalizes the unit ("KRW Trillion" → "USD Million").
func (r *Runner) magnitudeItem(it *workItem) error {
	if !it.bucket.IsMonetary() {
		return nil
	}
	if it.det.PricePattern == domain.PricePatternPerUnit {
		// Per-unit quotes ("USD per capita") keep their denominator;
		// rescaling them to the batch magnitude would misstate the
		// quantity.
		return nil
	}
	if isWageLike(it.rec.Name) {
		// Wages are quoted per person per period; forcing them into the
		// batch magnitude would destroy comparability.
		return nil
	}
	src := sourceMagnitude(it.rec)
	it.value = it.value * src.Factor() / r.cfg.TargetMagnitude.Factor()

	currency := strings.ToUpper(r.cfg.TargetCurrency)
	if it.det.CurrencyCode == "" {
		// No recognizable currency despite the monetary bucket; keep the
		// reported currency context out of the unit rather than inventing
		// one.
		currency = ""
	}
	if currency != "" {
		it.unit = monetaryUnit(currency, r.cfg.TargetMagnitude)
	}
	return nil
}

// rescaleItem normalizes the time basis of flows and wages. Stocks are
// point-in-time and never rescale.
func (r *Runner) rescaleItem(it *workItem) error {
	if r.cfg.TargetTimeScale == "" {
		return nil
	}
	period, ok := domain.ParsePeriod(it.rec.Periodicity)
	if !ok {
		if it.rec.Periodicity != "" {
			it.explain.Warnings = append(it.explain.Warnings,
				fmt.Sprintf("unrecognized periodicity %q, time basis left unchanged", it.rec.Periodicity))
		}
		return nil
	}
	if period == r.cfg.TargetTimeScale {
		return nil
	}

	wage := isWageLike(it.rec.Name)
	if it.bucket != domain.BucketMonetaryFlow && !wage {
		return nil
	}

	var (
		v   float64
		err error
	)
	if wage && period == domain.PeriodHourly {
		v, err = rescale.ConvertWageScale(it.value, period, r.cfg.TargetTimeScale, rescale.WageConventionHourly)
	} else {
		v, err = rescale.ConvertScale(it.value, period, r.cfg.TargetTimeScale)
	}
	if err != nil {
		return err
	}
	it.value = v
	return nil
}

// collect assembles the result in input order.
func (r *Runner) collect(items []*workItem, res *Result) {
	for _, it := range items {
		for _, w := range it.explain.Warnings {
			res.Warnings = append(res.Warnings, Warning{RecordID: it.rec.ID, Message: w})
		}
		if it.failure != nil {
			res.Errors = append(res.Errors, *it.failure)
			if r.metrics != nil {
				r.metrics.RecordItemError(it.failure.Type)
			}
			continue
		}

		out := domain.NormalizedRecord{
			IndicatorRecord: it.rec,
			Bucket:          it.bucket,
			NormalizedValue: it.value,
			NormalizedUnit:  it.unit,
			Explain:         it.explain,
		}
		if it.exempt {
			out.NormalizedValue = it.rec.Value
			out.NormalizedUnit = it.rec.Unit
		}

		if it.mismatch {
			msg := fmt.Sprintf("unit type %s disagrees with the majority of group %q", it.bucket, it.rec.CategoryGroup)
			res.Warnings = append(res.Warnings, Warning{RecordID: it.rec.ID, Message: msg})
			out.Explain.Warnings = append(out.Explain.Warnings, msg)
			if r.metrics != nil {
				r.metrics.UnitMismatches.Inc()
			}
			if r.cfg.StrictUnitCheck {
				res.IncompatibleUnits = append(res.IncompatibleUnits, out)
				continue
			}
		}

		res.Data = append(res.Data, out)
		if r.metrics != nil {
			r.metrics.RecordNormalized(string(it.bucket))
		}
	}
}
