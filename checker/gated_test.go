package checker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mizchi/purets-linter-sub000/rules"
)

func TestConsoleRequiresGrant(t *testing.T) {
	src := `/**
 * Logs a message.
 * @param message text to log
 */
export function log(message: string): void {
  console.log(message);
}
`
	result := check(t, "src/log.ts", src)
	require.Equal(t, []string{rules.AllowDirectives}, ruleIDs(result))
}

func TestConsoleGrantSatisfied(t *testing.T) {
	src := `/**
 * Logs a message.
 * @allow console
 * @param message text to log
 */
export function log(message: string): void {
  console.log(message);
}
`
	result := check(t, "src/log.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestUnusedGrantReported(t *testing.T) {
	src := `/**
 * Adds two numbers.
 * @allow timers
 * @param a left operand
 * @param b right operand
 */
export function add(a: number, b: number): number {
  return a + b;
}
`
	result := check(t, "src/add.ts", src)
	require.Equal(t, []string{rules.UnusedAllowDirective}, ruleIDs(result))
}

func TestDOMRequiresGrant(t *testing.T) {
	src := "function f(): string { return document.title; }\n"
	result := check(t, "src/sample.ts", src)
	require.Contains(t, ruleIDs(result), rules.AllowDirectives)
}

func TestNetTypeRequiresGrant(t *testing.T) {
	src := "function f(init: RequestInit): void { use(init); }\n"
	result := check(t, "src/sample.ts", src)
	require.Contains(t, ruleIDs(result), rules.AllowDirectives)
}

func TestNetGrantCoversTypes(t *testing.T) {
	src := `/**
 * @allow net
 */
function f(res: Response): void { use(res); }
`
	result := check(t, "src/sample.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestTimerCallWithoutGrantFiresTwice(t *testing.T) {
	src := `/**
 * Schedules a callback.
 * @param fn callback to run
 */
export function later(fn: () => void): void {
  setTimeout(fn, 100);
}
`
	result := check(t, "src/later.ts", src)
	require.Equal(t, []string{rules.NoImpureCalls, rules.AllowDirectives}, ruleIDs(result))
}

func TestImpureCalls(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Date.now", "function f(): number { return Date.now(); }\n"},
		{"Math.random", "function f(): number { return Math.random(); }\n"},
		{"new Date", "function f(): Date { return new Date(); }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := check(t, "src/sample.ts", tt.src)
			require.Equal(t, []string{rules.NoImpureCalls}, ruleIDs(result))
		})
	}
}

func TestImpureCallInDefaultParameterAllowed(t *testing.T) {
	src := `/**
 * Formats a timestamp.
 * @param timestamp epoch milliseconds
 */
export function stamp(timestamp: number = Date.now()): string {
  return String(timestamp);
}
`
	result := check(t, "src/stamp.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestImpureCallAtTopLevelNotFlagged(t *testing.T) {
	src := "const started: number = Date.now();\nuse(started);\n"
	result := check(t, "src/sample.ts", src)
	require.NotContains(t, ruleIDs(result), rules.NoImpureCalls)
}

func TestThrowRequiresGrant(t *testing.T) {
	src := `/**
 * Fails.
 */
export function boom(): never {
  throw new Error("boom");
}
`
	result := check(t, "src/boom.ts", src)
	require.Equal(t, []string{rules.AllowDirectives}, ruleIDs(result))
}

func TestThrowGrantedErrorConstruction(t *testing.T) {
	src := `/**
 * Fails with a typed error.
 * @allow throws
 * @param message error text
 */
export function fail(message: string): never {
  throw new ValidationError(message);
}
`
	result := check(t, "src/fail.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestThrowGrantedNonErrorValue(t *testing.T) {
	src := `/**
 * Fails.
 * @allow throws
 */
export function fail(): never {
  throw "bad";
}
`
	result := check(t, "src/fail.ts", src)
	require.Equal(t, []string{rules.NoThrow}, ruleIDs(result))
}

func TestThrowGrantedRethrowAllowed(t *testing.T) {
	src := `/**
 * Runs a callback, rethrowing failures.
 * @allow throws
 * @param fn callback to run
 */
export function run(fn: () => void): void {
  try {
    fn();
  } catch (err) {
    throw err;
  }
}
`
	result := check(t, "src/run.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestThrowGrantedOtherIdentifierFlagged(t *testing.T) {
	src := `/**
 * Fails.
 * @allow throws
 * @param cause stored error
 */
export function fail(cause: Error): never {
  throw cause;
}
`
	result := check(t, "src/fail.ts", src)
	require.Equal(t, []string{rules.NoThrow}, ruleIDs(result))
}
