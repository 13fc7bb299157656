package parser

import (
	"github.com/funvibe/lispy/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}

	p := New(ctx.TokenStream)
	p.SetSourceLength(len(ctx.SourceCode))
	root, err := p.Parse()
	if err != nil {
		ctx.AddError(err)
		return ctx
	}
	ctx.AstRoot = root
	return ctx
}
