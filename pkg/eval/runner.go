package eval

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/modelbench/modelbench/pkg/analysis"
	"github.com/modelbench/modelbench/pkg/llm"
	"github.com/modelbench/modelbench/pkg/prompt"
	"github.com/modelbench/modelbench/pkg/scenario"
	"github.com/modelbench/modelbench/pkg/score"
	"github.com/modelbench/modelbench/pkg/util"
)

// EvalRunner evaluates every candidate model in an EvalSpec and returns one
// ModelResult per model, in the order the models were requested.
type EvalRunner interface {
	Run(ctx context.Context) ([]*ModelResult, error)
	RunWithProgress(ctx context.Context, callback ProgressCallback) ([]*ModelResult, error)
}

type evalRunner struct {
	spec             *EvalSpec
	completer        llm.Completer
	rubric           score.Rubric
	progressCallback ProgressCallback
}

var _ EvalRunner = &evalRunner{}

// NewRunner creates a new EvalRunner from an EvalSpec and the completion
// capability used to invoke candidate models. The completer is injected
// rather than constructed here so callers control endpoint configuration
// and tests can substitute a fake.
func NewRunner(spec *EvalSpec, completer llm.Completer) (EvalRunner, error) {
	if spec == nil {
		return nil, fmt.Errorf("eval spec cannot be nil")
	}

	if completer == nil {
		return nil, fmt.Errorf("completer cannot be nil")
	}

	if err := spec.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid eval config: %w", err)
	}

	return &evalRunner{
		spec:             spec,
		completer:        completer,
		rubric:           score.DefaultRubric(),
		progressCallback: NoopProgressCallback,
	}, nil
}

func (r *evalRunner) Run(ctx context.Context) ([]*ModelResult, error) {
	return r.RunWithProgress(ctx, NoopProgressCallback)
}

func (r *evalRunner) RunWithProgress(ctx context.Context, callback ProgressCallback) ([]*ModelResult, error) {
	r.progressCallback = callback

	r.progressCallback(ProgressEvent{
		Type:    EventEvalStart,
		Message: "Starting evaluation",
	})

	pageAnalysis, err := r.loadAnalysis()
	if err != nil {
		return nil, fmt.Errorf("failed to load page analysis: %w", err)
	}

	// The prompt is model-agnostic: built once, sent to every candidate.
	evalPrompt := prompt.Build(pageAnalysis, r.spec.Config.Requirements)

	models := r.spec.Config.Models
	results := make([]*ModelResult, len(models))

	if concurrency := r.spec.Config.Concurrency(); concurrency > 1 {
		r.runParallel(ctx, evalPrompt, results, concurrency)
	} else {
		for i, model := range models {
			results[i] = r.evaluateModel(ctx, model, evalPrompt)
		}
	}

	r.progressCallback(ProgressEvent{
		Type:    EventEvalComplete,
		Message: "Evaluation complete",
	})

	return results, nil
}

func (r *evalRunner) loadAnalysis() (*analysis.UIAnalysis, error) {
	if r.spec.Config.AnalysisFile == "" {
		return analysis.Sample(), nil
	}

	return analysis.FromFile(r.spec.Config.AnalysisFile)
}

// runParallel fans the candidate models out over a bounded worker group.
// Each worker writes only its own slot in results, which keeps the report in
// request order and keeps one model's failure from touching another's
// outcome. Workers never return an error: failures are recorded in the slot.
func (r *evalRunner) runParallel(ctx context.Context, evalPrompt string, results []*ModelResult, concurrency int) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, model := range r.spec.Config.Models {
		g.Go(func() error {
			results[i] = r.evaluateModel(gctx, model, evalPrompt)
			return nil
		})
	}

	// Workers never error, so Wait is only a join point.
	_ = g.Wait()
}

// evaluateModel runs the Invoke → Extract → Score pipeline for one candidate.
// Both failure branches (invocation error, malformed JSON) are terminal for
// this model only.
func (r *evalRunner) evaluateModel(ctx context.Context, model string, evalPrompt string) *ModelResult {
	result := &ModelResult{Model: model}

	r.progressCallback(ProgressEvent{
		Type:    EventModelStart,
		Message: fmt.Sprintf("Evaluating model: %s", model),
		Result:  result,
	})

	if util.IsVerbose(ctx) {
		fmt.Printf("  → Sending prompt to '%s'…\n", model)
	}

	r.progressCallback(ProgressEvent{
		Type:    EventModelInvoking,
		Message: fmt.Sprintf("Invoking model: %s", model),
		Result:  result,
	})

	invocation := llm.Invoke(ctx, r.completer, model, evalPrompt, r.spec.Config.Timeout())
	result.LatencyMs = invocation.LatencyMs

	if invocation.Err != nil {
		result.Outcome = OutcomeFailure
		result.Error = invocation.Err.Error()
		r.completeModel(result)
		return result
	}

	payload, err := scenario.Extract(invocation.Response)
	if err != nil {
		result.Outcome = OutcomeFailure
		result.Error = err.Error()
		r.completeModel(result)
		return result
	}

	// A response with no recoverable JSON object, or one whose payload has
	// no scenarios, is a successful-but-empty outcome, not a failure.
	var scenarios []scenario.TestScenario
	if payload != nil {
		scenarios = payload.Scenarios
	}

	result.Outcome = OutcomeSuccess
	result.Scenarios = scenarios
	result.Score = r.rubric.Score(scenarios)

	r.completeModel(result)
	return result
}

func (r *evalRunner) completeModel(result *ModelResult) {
	r.progressCallback(ProgressEvent{
		Type:    EventModelComplete,
		Message: fmt.Sprintf("Completed model: %s (outcome: %s)", result.Model, result.Outcome),
		Result:  result,
	})
}
