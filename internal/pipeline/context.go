package pipeline

import (
	"github.com/funvibe/lispy/internal/ast"
	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/token"
)

// PipelineContext carries one source unit through the stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream []token.Token
	AstRoot     ast.Node

	// Expr is the desugared evaluator.Value and Result the value it
	// evaluated to. Both are typed as interface{} so that this package
	// does not depend on the evaluator.
	Expr   interface{}
	Result interface{}

	Errors []*diagnostics.DiagnosticError
}

func NewContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// Failed reports whether any stage recorded an error.
func (c *PipelineContext) Failed() bool {
	return len(c.Errors) > 0
}

// AddError records err as a diagnostic, stamping the file path.
func (c *PipelineContext) AddError(err error) {
	d := diagnostics.FromError(err)
	if d.File == "" {
		d.File = c.FilePath
	}
	c.Errors = append(c.Errors, d)
}
