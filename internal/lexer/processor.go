package lexer

import "github.com/funvibe/lispy/internal/pipeline"

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, err := Lex(ctx.SourceCode)
	if err != nil {
		ctx.AddError(err)
		return ctx
	}
	ctx.TokenStream = tokens
	return ctx
}
