// Package rules defines the catalogue of rule identifiers enforced by the
// purets checker, along with named presets that enable or disable bundles
// of rules.
package rules

// Rule identifiers. These are the ids reported in diagnostics and the names
// accepted by purets-disable directives.
const (
	// Banned constructs
	NoClass          = "no-class"
	NoEnum           = "no-enum"
	NoDelete         = "no-delete"
	NoDoWhile        = "no-do-while"
	NoAccessors      = "no-accessors"
	NoForEach        = "no-foreach"
	NoEval           = "no-eval"
	NoObjectAssign   = "no-object-assign"
	NoDefineProperty = "no-define-property"
	NoMemberAssign   = "no-member-assign"
	NoAsCast         = "no-as-cast"
	InterfaceExtends = "interface-extends"
	NoRecordObject   = "no-record-object"

	// Throw policy
	NoThrow = "no-throw"

	// Opt-in feature gating
	AllowDirectives      = "allow-directives"
	UnusedAllowDirective = "unused-allow-directive"

	// Import hygiene
	NoNamespaceImport = "no-namespace-import"
	ImportExtension   = "import-extension"
	NoHTTPImport      = "no-http-import"
	NodePrefix        = "node-prefix"
	PreferPromises    = "prefer-promises"
	NoBannedImport    = "no-banned-import"
	NoReexport        = "no-reexport"

	// Purity and scoping
	NoImpureCalls       = "no-impure-calls"
	NoThis              = "no-this"
	NoConstantCondition = "no-constant-condition"
	SwitchCaseBlock     = "switch-case-block"

	// Declaration typing
	RequireLetType    = "require-let-type"
	RequireArrayType  = "require-array-type"
	RequireExportType = "require-export-type"
	NoExportLet       = "no-export-let"

	// Dynamic access and arrays
	NoDynamicAccess     = "no-dynamic-access"
	PreferReadonlyArray = "prefer-readonly-array"

	// Function and module shape
	MaxParams            = "max-params"
	NoTopLevelSideEffect = "no-top-level-side-effect"
	RequireJSDoc         = "require-jsdoc"
	JSDocParams          = "jsdoc-params"
	RequireParamType     = "require-param-type"
	OnePublicFunction    = "one-public-function"
	NoUnusedVars         = "no-unused-vars"

	// Path policy
	FilenameMatch = "filename-match"
	PureModule    = "pure-module"
	IOModule      = "io-module"
)

// all lists every rule id in catalogue order.
var all = []string{
	NoClass,
	NoEnum,
	NoDelete,
	NoDoWhile,
	NoAccessors,
	NoForEach,
	NoEval,
	NoObjectAssign,
	NoDefineProperty,
	NoMemberAssign,
	NoAsCast,
	InterfaceExtends,
	NoRecordObject,
	NoThrow,
	AllowDirectives,
	UnusedAllowDirective,
	NoNamespaceImport,
	ImportExtension,
	NoHTTPImport,
	NodePrefix,
	PreferPromises,
	NoBannedImport,
	NoReexport,
	NoImpureCalls,
	NoThis,
	NoConstantCondition,
	SwitchCaseBlock,
	RequireLetType,
	RequireArrayType,
	RequireExportType,
	NoExportLet,
	NoDynamicAccess,
	PreferReadonlyArray,
	MaxParams,
	NoTopLevelSideEffect,
	RequireJSDoc,
	JSDocParams,
	RequireParamType,
	OnePublicFunction,
	NoUnusedVars,
	FilenameMatch,
	PureModule,
	IOModule,
}

// All returns every known rule id in catalogue order. The returned slice is
// a copy and may be modified by the caller.
func All() []string {
	ids := make([]string, len(all))
	copy(ids, all)
	return ids
}

// IsKnown reports whether id names a rule in the catalogue.
func IsKnown(id string) bool {
	for _, r := range all {
		if r == id {
			return true
		}
	}
	return false
}
