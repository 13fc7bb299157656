package repl

import (
	"errors"
	"log/slog"

	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/desugar"
	"github.com/funvibe/lispy/internal/evaluator"
	"github.com/funvibe/lispy/internal/lexer"
	"github.com/funvibe/lispy/internal/parser"
	"github.com/funvibe/lispy/internal/pipeline"
)

// Session is one interpreter session: a persistent top-level environment
// shared by every input evaluated through it.
type Session struct {
	Config    *config.Config
	Env       *evaluator.Environment
	Evaluator *evaluator.Evaluator
	Logger    *slog.Logger

	pipeline *pipeline.Pipeline
}

func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	eval := evaluator.New()
	eval.Scoping = cfg.Scoping
	env := evaluator.NewEnvironment()

	return &Session{
		Config:    cfg,
		Env:       env,
		Evaluator: eval,
		pipeline: pipeline.New(
			&lexer.LexerProcessor{},
			&parser.ParserProcessor{},
			&desugar.DesugarProcessor{},
			evaluator.NewProcessor(eval, env),
		),
	}
}

// SetLogger routes evaluator debug records to logger.
func (s *Session) SetLogger(logger *slog.Logger) {
	s.Logger = logger
	s.Evaluator.Logger = logger
}

// Run pushes source through the whole pipeline. Failures are reported in
// the returned context; the environment keeps any definitions made before
// the failure and is always back at top level.
func (s *Session) Run(source string) *pipeline.PipelineContext {
	ctx := s.pipeline.Run(pipeline.NewContext(source))
	if s.Env.Depth() != 0 {
		panic("repl: environment left enclosed after evaluation")
	}
	return ctx
}

// Eval evaluates one expression and returns its value or the first
// diagnostic.
func (s *Session) Eval(source string) (evaluator.Value, error) {
	ctx := s.Run(source)
	if ctx.Failed() {
		return nil, ctx.Errors[0]
	}
	val, ok := ctx.Result.(evaluator.Value)
	if !ok {
		return nil, errors.New("repl: pipeline produced no value")
	}
	return val, nil
}
