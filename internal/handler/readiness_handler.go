package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
	"github.com/relman-tools/trainhop-readiness/internal/service"
)

// ReadinessHandler exposes the assessment pipeline over HTTP. It is
// presentation glue only: it parses parameters, plays the operator
// role for merge dates, and maps the core's error taxonomy to
// statuses.
type ReadinessHandler struct {
	svc *service.ReadinessService
}

// NewReadinessHandler creates a readiness handler.
func NewReadinessHandler(svc *service.ReadinessService) *ReadinessHandler {
	return &ReadinessHandler{svc: svc}
}

// Register sets up readiness routes.
func (h *ReadinessHandler) Register(api fiber.Router) {
	api.Get("/readiness", h.Assess)
}

// Assess runs one assessment.
//
//	GET /api/v1/readiness?rev=<hash>&kind=hg|git&beta_start=YYYY-MM-DD&release_start=YYYY-MM-DD
//
// rev may be empty (latest). The date params are only consulted when
// the release calendar could not supply a merge date; leaving one out
// then yields a dates_required response instead of a classification.
func (h *ReadinessHandler) Assess(c fiber.Ctx) error {
	kind, err := parseKind(c.Query("kind", "hg"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dates := queryDates{c: c}
	result, err := h.svc.Assess(c.Context(), c.Query("rev"), kind, dates)
	if err != nil {
		return h.renderError(c, result, err)
	}

	return c.JSON(fiber.Map{"status": "ok", "result": result})
}

func (h *ReadinessHandler) renderError(c fiber.Ctx, result *domain.ReadinessResult, err error) error {
	var (
		notFound *port.NotFoundError
		missing  *port.MissingInputError
		conv     *port.ConversionError
		upstream *port.UpstreamError
		badParam *invalidParamError
	)

	switch {
	case errors.As(err, &missing):
		// Not a failure: the operator declined to supply a date.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "dates_required",
			"missing": missing.Field,
			"result":  result,
		})
	case errors.As(err, &badParam):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error(), "result": result})
	case errors.As(err, &conv), errors.As(err, &upstream):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "result": result})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "result": result})
	}
}

func parseKind(s string) (domain.InputKind, error) {
	switch s {
	case "hg", "":
		return domain.InputHg, nil
	case "git":
		return domain.InputGit, nil
	default:
		return 0, fmt.Errorf("unknown revision kind %q (want hg or git)", s)
	}
}

// invalidParamError marks a malformed request parameter so it maps to
// a 400 rather than a pipeline failure.
type invalidParamError struct {
	param string
	cause error
}

func (e *invalidParamError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.param, e.cause)
}

// queryDates satisfies port.DateProvider from request query params.
// An absent param is a declined prompt.
type queryDates struct {
	c fiber.Ctx
}

func (q queryDates) RequestDate(_ context.Context, field string) (*time.Time, error) {
	v := q.c.Query(field)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, &invalidParamError{param: field, cause: err}
	}
	return &t, nil
}
