package checker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mizchi/purets-linter-sub000/rules"
)

func TestMutatedArrayNotReported(t *testing.T) {
	src := `/**
 * Builds a list.
 */
export function build(): number[] {
  const arr = [1, 2];
  arr.push(3);
  return arr;
}
`
	result := check(t, "src/build.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestUnmutatedArrayReported(t *testing.T) {
	src := `/**
 * Builds a list.
 */
export function build(): number[] {
  const arr = [1, 2];
  return arr;
}
`
	result := check(t, "src/build.ts", src)
	require.Equal(t, []string{rules.PreferReadonlyArray}, ruleIDs(result))
	require.Contains(t, result.Diagnostics[0].Message, "'arr'")
}

func TestMutationAfterUseStillCounts(t *testing.T) {
	// The mutation appears after other statements; reporting is deferred to
	// the end of the file, so it must still be seen.
	src := `/**
 * Builds a list.
 */
export function build(): number[] {
  const arr = [1, 2];
  const copy = arr.slice();
  arr.sort();
  return copy;
}
`
	result := check(t, "src/build.ts", src)
	ids := ruleIDs(result)
	require.NotContains(t, ids, rules.PreferReadonlyArray, "arr was mutated")
}

func TestReadonlyArrayTypeNotReported(t *testing.T) {
	src := `/**
 * Builds a list.
 */
export function build(): ReadonlyArray<number> {
  const arr: ReadonlyArray<number> = [1, 2];
  return arr;
}
`
	result := check(t, "src/build.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestArrayTypedBindingTracked(t *testing.T) {
	src := `/**
 * Builds a list.
 */
export function build(): number[] {
  const arr: number[] = [];
  return arr;
}
`
	result := check(t, "src/build.ts", src)
	require.Equal(t, []string{rules.PreferReadonlyArray}, ruleIDs(result))
}

func TestIndexedAssignmentCountsAsMutation(t *testing.T) {
	src := `/**
 * Builds a list.
 */
export function build(): number[] {
  const arr: number[] = [0];
  arr[0] = 1;
  return arr;
}
`
	result := check(t, "src/build.ts", src)
	ids := ruleIDs(result)
	require.NotContains(t, ids, rules.PreferReadonlyArray)
	// The indexed write is still a member assignment.
	require.Contains(t, ids, rules.NoMemberAssign)
}

func TestNumericIndexAccessAllowed(t *testing.T) {
	src := `/**
 * Picks values.
 * @param values source list
 */
export function pick(values: ReadonlyArray<string>): string {
  const first = values[0];
  const second = values["2"];
  return first + second;
}
`
	result := check(t, "src/pick.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestDynamicAccessFlagged(t *testing.T) {
	src := `/**
 * Looks up a value.
 * @param table source table
 * @param key lookup key
 */
export function lookup(table: Record<string, number>, key: string): number {
  return table[key];
}
`
	result := check(t, "src/lookup.ts", src)
	require.Equal(t, []string{rules.NoDynamicAccess}, ruleIDs(result))
}
