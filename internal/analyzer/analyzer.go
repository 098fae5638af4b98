// Package analyzer exposes the verdict engine behind the collaborator
// boundary used by storage and the CLI: one request in, one complete
// judgment out, never an error.
package analyzer

import (
	"log/slog"

	"github.com/go-one-2/money/internal/model"
	"github.com/go-one-2/money/internal/rules"
)

// Request carries everything a single evaluation consumes. Stats must be
// a consistent snapshot excluding the expense itself.
type Request struct {
	Stats    model.MonthlyStats
	Settings model.UserSettings
	Expense  model.Expense
}

// Engine judges a single expense. RuleEngine is the only implementation
// today; the interface is the seam where a model-backed analyzer would
// plug in.
type Engine interface {
	Evaluate(req Request) rules.Result
}

// RuleEngine adapts the pure rules package to the Engine interface.
type RuleEngine struct{}

// Evaluate runs the deterministic rule evaluation.
func (RuleEngine) Evaluate(req Request) rules.Result {
	return rules.AnalyzeExpense(req.Expense, req.Settings, req.Stats)
}

// Service wraps an Engine with the fail-open posture the boundary
// requires: every submitted expense receives some judgment.
type Service struct {
	engine Engine
}

// NewService creates a Service backed by the given engine, defaulting to
// the rule engine when nil.
func NewService(engine Engine) *Service {
	if engine == nil {
		engine = RuleEngine{}
	}
	return &Service{engine: engine}
}

// fallbackJudgment is returned when evaluation fails internally.
func fallbackJudgment() model.Judgment {
	return model.Judgment{
		Verdict:     model.VerdictNeutral,
		Reason:      "분석 중 오류가 발생했습니다.",
		SubCategory: model.SubCategoryGeneral,
	}
}

// Analyze evaluates one expense. An internal panic degrades to the safe
// neutral judgment instead of propagating.
func (s *Service) Analyze(req Request) (judgment model.Judgment) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("expense analysis failed, returning fallback judgment",
				"expense_id", req.Expense.ID, "panic", r)
			judgment = fallbackJudgment()
		}
	}()

	result := s.engine.Evaluate(req)
	return model.Judgment{
		Verdict:     result.Verdict,
		Reason:      result.Reason,
		SubCategory: result.SubCategory,
	}
}
