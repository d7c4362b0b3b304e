package checker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mizchi/purets-linter-sub000/rules"
)

func TestOnePublicFunction(t *testing.T) {
	src := `/**
 * Returns one.
 */
export function a(): number {
  return 1;
}

/**
 * Returns two.
 */
export function b(): number {
  return 2;
}
`
	result := check(t, "src/a.ts", src)
	require.Len(t, result.Diagnostics, 1)
	require.Equal(t, rules.OnePublicFunction, result.Diagnostics[0].Rule)
	require.Contains(t, result.Diagnostics[0].Message, "'b'")
}

func TestOnePublicFunctionEntryFileExempt(t *testing.T) {
	src := `/**
 * Returns one.
 */
export function a(): number {
  return 1;
}

/**
 * Returns two.
 */
export function b(): number {
  return 2;
}
`
	result := check(t, "src/index.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestNonFunctionExportFlagged(t *testing.T) {
	src := "export const LIMIT: number = 10;\n"
	result := check(t, "src/sample.ts", src)
	require.Equal(t, []string{rules.OnePublicFunction}, ruleIDs(result))
	require.Contains(t, result.Diagnostics[0].Message, "'LIMIT'")
}

func TestDefaultExportValueFlagged(t *testing.T) {
	src := "export default 42;\n"
	result := check(t, "src/sample.ts", src)
	require.Equal(t, []string{rules.OnePublicFunction}, ruleIDs(result))
	require.Contains(t, result.Diagnostics[0].Message, "'default'")
}

func TestDefaultExportOfTopLevelFunction(t *testing.T) {
	src := `function render(): string {
  return "";
}

export default render;
`
	result := check(t, "src/render.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestAnonymousDefaultExportCountsAsFunction(t *testing.T) {
	src := `/**
 * Runs.
 */
export function run(): number {
  return 1;
}

export default function (): number {
  return 2;
}
`
	result := check(t, "src/run.ts", src)
	require.Equal(t, []string{rules.OnePublicFunction}, ruleIDs(result))
}

func TestTypeOnlyExportsAllowed(t *testing.T) {
	src := `export type Point = { x: number; y: number };
export interface Shaped extends Base { area: number; }
`
	result := check(t, "src/sample.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestExportLetFlagged(t *testing.T) {
	src := "export let counter = 0;\n"
	result := check(t, "src/sample.ts", src)
	require.Contains(t, ruleIDs(result), rules.NoExportLet)
}

func TestExportConstRequiresType(t *testing.T) {
	src := "export const VALUE = 42;\n"
	result := check(t, "src/sample.ts", src)
	require.Contains(t, ruleIDs(result), rules.RequireExportType)
}

func TestExportClauseClassifiesFunctions(t *testing.T) {
	src := `function helper(): number {
  return 1;
}

const supporting = (): number => 2;

export { helper, supporting };
`
	result := check(t, "src/helper.ts", src)
	// Both names resolve to top-level functions, so only the second one
	// violates the single-export contract.
	require.Equal(t, []string{rules.OnePublicFunction}, ruleIDs(result))
	require.Contains(t, result.Diagnostics[0].Message, "'supporting'")
}

func TestUnusedVariableReported(t *testing.T) {
	src := `/**
 * Computes.
 */
export function calc(): number {
  const unused = 1;
  return 2;
}
`
	result := check(t, "src/calc.ts", src)
	require.Equal(t, []string{rules.NoUnusedVars}, ruleIDs(result))
	require.Contains(t, result.Diagnostics[0].Message, "'unused'")
}

func TestUnderscorePrefixSkipsUnusedCheck(t *testing.T) {
	src := `/**
 * Computes.
 */
export function calc(): number {
  const _ignored = 1;
  return 2;
}
`
	result := check(t, "src/calc.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestMissingJSDoc(t *testing.T) {
	src := "export function calc(): number { return 1; }\n"
	result := check(t, "src/calc.ts", src)
	require.Equal(t, []string{rules.RequireJSDoc}, ruleIDs(result))
}

func TestJSDocParamMismatch(t *testing.T) {
	src := `/**
 * Doubles a value.
 * @param x value to double
 */
export function double(value: number): number {
  return value * 2;
}
`
	result := check(t, "src/double.ts", src)
	require.Equal(t, []string{rules.JSDocParams}, ruleIDs(result))
}

func TestJSDocMissingParamTag(t *testing.T) {
	src := `/**
 * Doubles a value.
 */
export function double(value: number): number {
  return value * 2;
}
`
	result := check(t, "src/double.ts", src)
	require.Equal(t, []string{rules.JSDocParams}, ruleIDs(result))
}

func TestJSDocExtraParamTag(t *testing.T) {
	src := `/**
 * Reports the answer.
 * @param extra does not exist
 */
export function answer(): number {
  return 42;
}
`
	result := check(t, "src/answer.ts", src)
	require.Equal(t, []string{rules.JSDocParams}, ruleIDs(result))
}

func TestUntypedParameterFlagged(t *testing.T) {
	src := `/**
 * Doubles a value.
 * @param value value to double
 */
export function double(value): number {
  return value * 2;
}
`
	result := check(t, "src/double.ts", src)
	require.Equal(t, []string{rules.RequireParamType}, ruleIDs(result))
}

func TestJSDocArrowFunctionExport(t *testing.T) {
	src := `/**
 * Triples a value.
 * @param value value to triple
 */
export const triple = (value: number): number => value * 3;
`
	result := check(t, "src/triple.ts", src)
	require.True(t, result.Clean(), "unexpected diagnostics: %v", result.Diagnostics)
}

func TestFilenameMatch(t *testing.T) {
	src := `/**
 * Adds.
 * @param a left operand
 * @param b right operand
 */
export function add(a: number, b: number): number {
  return a + b;
}
`
	result := check(t, "src/sum.ts", src)
	require.Equal(t, []string{rules.FilenameMatch}, ruleIDs(result))

	for _, path := range []string{"src/add.ts", "src/index.ts", "src/add.test.ts", "src/types/sum.ts", "src/errors/sum.ts"} {
		exempt := check(t, path, src)
		require.NotContains(t, ruleIDs(exempt), rules.FilenameMatch, path)
	}
}

func TestFilenameMatchAppliesToTestFiles(t *testing.T) {
	src := `/**
 * Adds.
 * @param a left operand
 * @param b right operand
 */
export function add(a: number, b: number): number {
  return a + b;
}
`
	result := check(t, "src/sum.test.ts", src)
	require.Contains(t, ruleIDs(result), rules.FilenameMatch)
}

func TestPureModuleRejectsAsync(t *testing.T) {
	src := `/**
 * Computes.
 */
export async function compute(): Promise<number> {
  return 1;
}
`
	result := check(t, "src/pure/compute.ts", src)
	require.Equal(t, []string{rules.PureModule}, ruleIDs(result))

	elsewhere := check(t, "src/compute.ts", src)
	require.True(t, elsewhere.Clean(), "unexpected diagnostics: %v", elsewhere.Diagnostics)
}

func TestIOModuleRequiresAsync(t *testing.T) {
	src := `/**
 * Reads.
 */
export function read(): string {
  return "";
}
`
	result := check(t, "src/io/read.ts", src)
	require.Equal(t, []string{rules.IOModule}, ruleIDs(result))

	asyncSrc := `/**
 * Reads.
 */
export async function read(): Promise<string> {
  return "";
}
`
	clean := check(t, "src/io/read.ts", asyncSrc)
	require.True(t, clean.Clean(), "unexpected diagnostics: %v", clean.Diagnostics)
}
