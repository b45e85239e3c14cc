package checks

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/fixture"
)

// Run loads the scenario's fixture and runs every check against it. A
// failing check is recorded in the result, not returned as an error.
func Run(ctx context.Context, scenario *Scenario, logger *zap.Logger) (*Result, error) {
	fx, err := fixture.Load(ctx, scenario.Fixture)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture: %w", err)
	}

	logger.Debug("fixture loaded",
		zap.String("path", fx.Path),
		zap.String("format", fx.Format),
		zap.String("project", fx.Project.Name),
	)

	result, err := RunProject(ctx, scenario, fx.Project.Build(fx.Dir()), logger)
	if err != nil {
		return nil, err
	}
	result.Fixture = filepath.Base(fx.Path)
	return result, nil
}

// RunProject runs the scenario's checks against project. The scenario's
// fixture is not loaded.
func RunProject(ctx context.Context, scenario *Scenario, project host.Project, logger *zap.Logger) (*Result, error) {
	result := &Result{
		Scenario: scenario.Name,
		Fixture:  filepath.Base(scenario.Fixture),
		Pass:     true,
		Checks:   make([]CheckResult, 0, len(scenario.Checks)),
	}

	for i := range scenario.Checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &scenario.Checks[i]
		cr, err := runCheck(project, i, c)
		if err != nil {
			return nil, fmt.Errorf("checks[%d]: %w", i, err)
		}

		logger.Debug("check",
			zap.Int("index", i),
			zap.String("subject", c.Subject),
			zap.String("assert", c.Assert),
			zap.Bool("pass", cr.Pass),
			zap.String("message", cr.Message),
		)

		if !cr.Pass {
			result.Pass = false
		}
		result.Checks = append(result.Checks, cr)
	}

	logger.Info("scenario complete",
		zap.String("scenario", scenario.Name),
		zap.Int("passed", result.Passed()),
		zap.Int("failed", result.Failed()),
	)
	return result, nil
}

func runCheck(project host.Project, index int, c *Check) (CheckResult, error) {
	cr := CheckResult{
		Index:    index,
		Subject:  c.Subject,
		Assert:   c.Assert,
		Expected: c.ExpectFailure,
	}

	// Scenarios built in code skip LoadScenario, so validate here too.
	if err := validateCheck(c); err != nil {
		return cr, err
	}
	subj, _ := parseSubject(c.Subject)
	operation := operations[subj.kind][c.Assert]

	rec := &recordingT{}
	e := &env{t: rec, project: project, subject: subj}
	if usage := execute(rec, func() { operation.run(e, c) }); usage != nil {
		cr.Error = usage.Message
		return cr, nil
	}

	cr.Message = rec.message()
	switch {
	case c.ExpectFailure == "":
		cr.Pass = !rec.failed()
	case !rec.failed():
		cr.Pass = false
		cr.Message = "expected failure did not occur"
	default:
		cr.Pass = cr.Message == c.ExpectFailure
	}
	return cr, nil
}
