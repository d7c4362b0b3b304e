package checker

// Tree-sitter TypeScript node kinds the checker dispatches on.
//
// Reference: https://github.com/tree-sitter/tree-sitter-typescript
const (
	kindProgram = "program"
	kindComment = "comment"

	// Imports and exports
	kindImportStatement = "import_statement"
	kindImportClause    = "import_clause"
	kindNamespaceImport = "namespace_import"
	kindNamedImports    = "named_imports"
	kindImportSpecifier = "import_specifier"
	kindExportStatement = "export_statement"
	kindExportClause    = "export_clause"
	kindExportSpecifier = "export_specifier"
	kindNamespaceExport = "namespace_export"
	kindString          = "string"
	kindStringFragment  = "string_fragment"

	// Declarations
	kindFunctionDeclaration  = "function_declaration"
	kindGeneratorFunction    = "generator_function_declaration"
	kindFunctionExpression   = "function_expression"
	kindFunctionKeyword      = "function" // function expression in older grammars
	kindArrowFunction        = "arrow_function"
	kindMethodDefinition     = "method_definition"
	kindFormalParameters     = "formal_parameters"
	kindRequiredParameter    = "required_parameter"
	kindOptionalParameter    = "optional_parameter"
	kindLexicalDeclaration   = "lexical_declaration"
	kindVariableDeclaration  = "variable_declaration"
	kindVariableDeclarator   = "variable_declarator"
	kindClassDeclaration     = "class_declaration"
	kindAbstractClass        = "abstract_class_declaration"
	kindClassExpression      = "class"
	kindEnumDeclaration      = "enum_declaration"
	kindInterfaceDeclaration = "interface_declaration"
	kindTypeAliasDeclaration = "type_alias_declaration"

	// Expressions
	kindCallExpression        = "call_expression"
	kindNewExpression         = "new_expression"
	kindMemberExpression      = "member_expression"
	kindSubscriptExpression   = "subscript_expression"
	kindAssignmentExpression  = "assignment_expression"
	kindAugmentedAssignment   = "augmented_assignment_expression"
	kindUnaryExpression       = "unary_expression"
	kindParenthesized         = "parenthesized_expression"
	kindAwaitExpression       = "await_expression"
	kindAsExpression          = "as_expression"
	kindTypeAssertion         = "type_assertion"
	kindIdentifier            = "identifier"
	kindPropertyIdentifier    = "property_identifier"
	kindShorthandProperty     = "shorthand_property_identifier"
	kindTypeIdentifier        = "type_identifier"
	kindThis                  = "this"
	kindTrue                  = "true"
	kindFalse                 = "false"
	kindNumber                = "number"
	kindArray                 = "array"
	kindObject                = "object"

	// Statements
	kindExpressionStatement = "expression_statement"
	kindIfStatement         = "if_statement"
	kindWhileStatement      = "while_statement"
	kindDoStatement         = "do_statement"
	kindForStatement        = "for_statement"
	kindForInStatement      = "for_in_statement"
	kindSwitchStatement     = "switch_statement"
	kindSwitchCase          = "switch_case"
	kindSwitchDefault       = "switch_default"
	kindStatementBlock      = "statement_block"
	kindBreakStatement      = "break_statement"
	kindTryStatement        = "try_statement"
	kindCatchClause         = "catch_clause"
	kindThrowStatement      = "throw_statement"

	// Types
	kindTypeAnnotation = "type_annotation"
	kindArrayType      = "array_type"
	kindGenericType    = "generic_type"
	kindReadonlyType   = "readonly_type"
)

// Node field names used with ChildByFieldName.
const (
	fieldName        = "name"
	fieldType        = "type"
	fieldValue       = "value"
	fieldKind        = "kind"
	fieldCondition   = "condition"
	fieldDeclaration = "declaration"
	fieldSource      = "source"
	fieldFunction    = "function"
	fieldConstructor = "constructor"
	fieldObject      = "object"
	fieldProperty    = "property"
	fieldIndex       = "index"
	fieldLeft        = "left"
	fieldOperator    = "operator"
	fieldParameter   = "parameter"
	fieldParameters  = "parameters"
	fieldPattern     = "pattern"
	fieldBody        = "body"
	fieldAlias       = "alias"
	fieldArguments   = "arguments"
)

// isFunctionKind reports whether the node kind introduces a function scope.
func isFunctionKind(kind string) bool {
	switch kind {
	case kindFunctionDeclaration, kindGeneratorFunction, kindFunctionExpression,
		kindFunctionKeyword, kindArrowFunction, kindMethodDefinition:
		return true
	}
	return false
}
