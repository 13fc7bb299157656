package evaluator

import (
	"fmt"

	"github.com/funvibe/lispy/internal/pipeline"
)

// EvaluatorProcessor evaluates ctx.Expr against a caller-owned
// environment, so consecutive runs share definitions.
type EvaluatorProcessor struct {
	Evaluator *Evaluator
	Env       *Environment
}

func NewProcessor(eval *Evaluator, env *Environment) *EvaluatorProcessor {
	return &EvaluatorProcessor{Evaluator: eval, Env: env}
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}
	expr, ok := ctx.Expr.(Value)
	if !ok {
		ctx.AddError(fmt.Errorf("evaluator: no expression to evaluate (got %T)", ctx.Expr))
		return ctx
	}

	result, err := ep.Evaluator.Eval(expr, ep.Env)
	if err != nil {
		ctx.AddError(err)
		return ctx
	}
	ctx.Result = result
	return ctx
}
