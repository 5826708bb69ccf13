// Package console is the interactive terminal front end: a sequential prompt
// loop that collects two operands and an operator, computes, shows the
// result, and offers history, clear, and quit actions between calculations.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-calc-frontends/internal/engine"
	"go-calc-frontends/internal/parse"
	"go-calc-frontends/internal/session"

	"go.uber.org/zap"
)

// Prompts and messages. The loop re-prompts the same question on invalid
// input and only ever advances on a valid answer.
const (
	promptFirst        = "Enter the first number: "
	promptSecond       = "Enter the second number: "
	promptOperation    = "Enter the operation (+, -, *, /): "
	promptContinuation = "Press Enter for a new calculation, or type 'history', 'clear', or 'q'/'quit'/'no' to quit: "

	msgInvalidNumber    = "Error: Please enter a valid number!"
	msgInvalidOperation = "Error: Please enter a valid operation (+, -, *, /)!"
	msgDivisionByZero   = "Error: Cannot divide by zero!"
	msgHistoryCleared   = "History cleared."
)

// Loop drives one calculator session over a line-based input source.
type Loop struct {
	sess  *session.Session
	lines <-chan string
	done  chan struct{}
	out   io.Writer
	log   *zap.Logger
}

// NewLoop builds a loop reading from in and writing prompts and results to out.
func NewLoop(sess *session.Session, in io.Reader, out io.Writer, log *zap.Logger) *Loop {
	done := make(chan struct{})
	return &Loop{
		sess:  sess,
		lines: Lines(in, done),
		done:  done,
		out:   out,
		log:   log,
	}
}

// Run executes the prompt loop until a quit token, EOF, or ctx cancellation.
// It always returns nil after an orderly exit; ctx.Err() is not surfaced
// because an interrupt is a normal way to leave the calculator. Run consumes
// the loop: the input pump is released on return, so call it once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		a, ok := l.promptNumber(ctx, promptFirst)
		if !ok {
			return nil
		}
		b, ok := l.promptNumber(ctx, promptSecond)
		if !ok {
			return nil
		}
		op, ok := l.promptOperator(ctx)
		if !ok {
			return nil
		}

		l.compute(a, b, op)

		cont, ok := l.promptContinuationToken(ctx)
		if !ok {
			return nil
		}
		if !l.handleContinuation(cont) {
			l.log.Info("quit", zap.String("token", cont))
			return nil
		}
	}
}

// compute runs the engine and routes the outcome: successful records go to
// the session and the result line, failures only to the error line.
func (l *Loop) compute(a, b float64, op string) {
	result, err := engine.Apply(op, a, b)
	if err != nil {
		if errors.Is(err, engine.ErrDivisionByZero) {
			fmt.Fprintln(l.out, msgDivisionByZero)
		} else {
			fmt.Fprintf(l.out, "Error: %s\n", err)
		}
		l.log.Warn("calculation failed",
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.String("operator", op),
			zap.Error(err),
		)
		return
	}

	rec := session.Record{A: a, B: b, Operator: op, Result: result}
	l.sess.Append(rec)
	fmt.Fprintf(l.out, "Result: %s\n", rec)

	l.log.Info("calculation completed",
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.String("operator", op),
		zap.Float64("result", result),
		zap.Int("history_length", l.sess.Len()),
	)
}

// handleContinuation interprets one continuation token. It reports false when
// the loop should terminate. Unrecognized tokens start a new calculation,
// same as pressing Enter.
func (l *Loop) handleContinuation(token string) bool {
	switch token {
	case "q", "quit", "no":
		return false
	case "history":
		for _, line := range l.sess.Render() {
			fmt.Fprintln(l.out, line)
		}
	case "clear":
		l.sess.Clear()
		fmt.Fprintln(l.out, msgHistoryCleared)
		l.log.Info("history cleared")
	}
	return true
}

// promptNumber asks until the answer has a numeric prefix. ok is false when
// input ended or ctx was cancelled.
func (l *Loop) promptNumber(ctx context.Context, prompt string) (v float64, ok bool) {
	for {
		line, ok := l.readLine(ctx, prompt)
		if !ok {
			return 0, false
		}
		if v, parsed := parse.Float(line); parsed {
			return v, true
		}
		fmt.Fprintln(l.out, msgInvalidNumber)
	}
}

func (l *Loop) promptOperator(ctx context.Context) (string, bool) {
	for {
		line, ok := l.readLine(ctx, promptOperation)
		if !ok {
			return "", false
		}
		op := strings.TrimSpace(line)
		if engine.ValidOperator(op) {
			return op, true
		}
		fmt.Fprintln(l.out, msgInvalidOperation)
	}
}

func (l *Loop) promptContinuationToken(ctx context.Context) (string, bool) {
	line, ok := l.readLine(ctx, promptContinuation)
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(line)), true
}

// readLine prints prompt and waits for one line, a closed input, or ctx
// cancellation, whichever comes first.
func (l *Loop) readLine(ctx context.Context, prompt string) (string, bool) {
	fmt.Fprint(l.out, prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(l.out)
		l.log.Info("interrupted")
		return "", false
	case line, open := <-l.lines:
		if !open {
			fmt.Fprintln(l.out)
			return "", false
		}
		return line, true
	}
}
