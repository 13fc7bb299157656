package desugar

import "github.com/funvibe/lispy/internal/pipeline"

type DesugarProcessor struct{}

func (dp *DesugarProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || ctx.AstRoot == nil {
		return ctx
	}
	ctx.Expr = Desugar(ctx.AstRoot)
	return ctx
}
