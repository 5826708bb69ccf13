// Package web is the browser form front end: one page with operand fields, a
// fixed operator selector, a result region, and the calculation history.
// Failed attempts never touch the history; the session lives for the server
// process, the Go analogue of the page lifetime.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-calc-frontends/internal/engine"
	"go-calc-frontends/internal/handlers"
	"go-calc-frontends/internal/observability"
	"go-calc-frontends/internal/parse"
	"go-calc-frontends/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Error messages shown in the page's error region.
const (
	msgDivisionByZero = "Cannot divide by zero!"
	msgInvalidNumbers = "Please enter valid numbers!"
	msgInvalidOp      = "Invalid operation selected!"
)

// tracer is the form handler's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calc.web")

// Handler serves the calculator form over one shared calculation session.
type Handler struct {
	sess *session.Session
}

// NewHandler wires the session to the handler and keeps the history-length
// gauge current via the session's change notification.
func NewHandler(sess *session.Session) *Handler {
	sess.OnChange(func(n int) {
		if historyGauge != nil {
			historyGauge.Record(context.Background(), int64(n))
		}
	})
	return &Handler{sess: sess}
}

// Index handles GET / — the form with the current history.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, h.pageData("", "", "+"))
}

// Calculate handles POST /calculate: parse the form, validate, compute, and
// re-render the page. Validation failures and division by zero abort the
// attempt without mutating the session.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calc.calculate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	if err := r.ParseForm(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid form body", err)
		handlers.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	rawA := r.PostFormValue("operand1")
	rawB := r.PostFormValue("operand2")
	op := r.PostFormValue("operator")

	data := h.pageData(rawA, rawB, op)

	a, okA := parse.Float(rawA)
	b, okB := parse.Float(rawB)
	if !okA || !okB {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid operand",
			fmt.Errorf("operand1=%q operand2=%q", rawA, rawB))
		data.Error = msgInvalidNumbers
		renderPage(w, http.StatusOK, data)
		return
	}

	// The selector constrains the operator, but the form value is still
	// validated against hand-crafted requests.
	if !engine.ValidOperator(op) {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid operator",
			fmt.Errorf("operator=%q", op))
		data.Error = msgInvalidOp
		renderPage(w, http.StatusOK, data)
		return
	}

	span.SetAttributes(
		attribute.String("calc.operator", op),
		attribute.Float64("calc.operand.a", a),
		attribute.Float64("calc.operand.b", b),
	)

	start := time.Now()
	result, err := engine.Apply(op, a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		msg := err.Error()
		if errors.Is(err, engine.ErrDivisionByZero) {
			msg = msgDivisionByZero
		}
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", msg, err)
		data.Error = msg
		renderPage(w, http.StatusOK, data)
		return
	}

	rec := session.Record{A: a, B: b, Operator: op, Result: result}
	h.sess.Append(rec)

	attrs := metric.WithAttributes(attribute.String("operation", op))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calc.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("operator", op),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.Int("history_length", h.sess.Len()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	data.Result = rec.String()
	data.History = h.sess.Render()
	renderPage(w, http.StatusOK, data)
}

// ClearHistory handles POST /history/clear and redirects back to the form.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.sess.Clear()

	observability.LoggerWithTrace(ctx).Info("history cleared",
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// History handles GET /api/history with the rendered history as JSON.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		History: h.sess.Render(),
		Count:   h.sess.Len(),
	})
}

func (h *Handler) pageData(rawA, rawB, op string) PageData {
	return PageData{
		OperandA:  rawA,
		OperandB:  rawB,
		Operator:  op,
		History:   h.sess.Render(),
		Operators: Operators,
	}
}
