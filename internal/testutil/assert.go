// Package testutil holds the assertions and board fixtures shared by the
// engine, search and command tests.
package testutil

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// AssertEqual reports a cmp.Diff between want and got. Values with
// unexported fields, such as chess.Piece and engine.Move, must be compared
// with == through AssertTrue instead.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertMoves compares moves, in coordinate notation and sorted, against
// want. Order in want does not matter and nil equals an empty list.
func AssertMoves(t testing.TB, want []string, moves []engine.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, MoveStrings(moves), cmpopts.EquateEmpty(), cmpopts.SortSlices(lessString)); diff != "" {
		fail(t, msgAndArgs, "moves mismatch (-want +got):\n%s", diff)
	}
}

// AssertPlayable is AssertMoves over the moves the side to move on board
// can play without leaving its own king in check.
func AssertPlayable(t testing.TB, board *engine.Board, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, PlayableMoveStrings(board), cmpopts.EquateEmpty(), cmpopts.SortSlices(lessString)); diff != "" {
		fail(t, msgAndArgs, "playable moves for %q mismatch (-want +got):\n%s", engine.BoardToFEN(board), diff)
	}
}

func lessString(a, b string) bool { return a < b }

func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected an error")
	}
}

// AssertContains checks that substr occurs in got, typically a FEN or a
// rendered board.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

func AssertNotContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q contains %q", got, substr)
	}
}

func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "condition is false")
	}
}

func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "condition is true")
	}
}

// AssertNil accepts untyped nil and typed nil pointers, so a *engine.Board
// returned alongside an error can be checked directly.
func AssertNil(t testing.TB, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if got == nil {
		return
	}
	rv := reflect.ValueOf(got)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return
		}
	}
	fail(t, msgAndArgs, "expected nil, got %v", got)
}

// fail reports format, prefixed by the caller's optional message.
func fail(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// formatMessage treats a leading string as a format for the rest.
func formatMessage(msgAndArgs ...interface{}) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs[0])
}
