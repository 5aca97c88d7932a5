package syntax

// Kind is the closed set of node tags the correlation core dispatches on.
// The tree producer maps every grammar node onto one of these; constructs
// with no correlation-relevant role collapse into the generic kinds at the
// end of the list.
type Kind uint8

const (
	// KindInvalid is the zero value. No node in a well-formed tree has it;
	// the zero NodeRef reports it.
	KindInvalid Kind = iota

	// Declarations.
	KindMethod
	KindConversionOperator
	KindOperator
	KindGetAccessor
	KindSetAccessor
	KindAddAccessor
	KindRemoveAccessor
	KindConstructor
	KindDestructor
	KindProperty
	KindIndexer

	// Body containers.
	KindBlock
	KindExpressionBody // arrow clause; its single child is the body expression
	KindInitializer    // equals-value clause; its single non-token child is the value
	KindAccessorList
	KindParameterList
	KindParameter

	// Lambda shapes.
	KindParenthesizedLambda
	KindSimpleLambda
	KindAnonymousMethod
	KindFromClause
	KindLetClause
	KindWhereClause
	KindOrderAscending
	KindOrderDescending
	KindSelectClause
	KindJoinClause
	KindGroupClause
	KindQueryExpression

	// Control-flow markers.
	KindAwaitExpression
	KindYieldReturn
	KindYieldBreak
	KindLocalFunction

	// Modifier tokens.
	KindPublicModifier
	KindPrivateModifier
	KindProtectedModifier
	KindInternalModifier
	KindAsyncModifier
	KindAbstractModifier
	KindExternModifier
	KindStaticModifier
	KindOtherModifier

	// Generic kinds.
	KindIdentifier // leaf expression naming something
	KindExpression // any other expression node
	KindStatement  // any other statement node
	KindKeyword
	KindToken // punctuation, literals, any other leaf
	KindOther // any other interior node
)

var kindNames = [...]string{
	KindInvalid:             "invalid",
	KindMethod:              "method",
	KindConversionOperator:  "conversion_operator",
	KindOperator:            "operator",
	KindGetAccessor:         "get_accessor",
	KindSetAccessor:         "set_accessor",
	KindAddAccessor:         "add_accessor",
	KindRemoveAccessor:      "remove_accessor",
	KindConstructor:         "constructor",
	KindDestructor:          "destructor",
	KindProperty:            "property",
	KindIndexer:             "indexer",
	KindBlock:               "block",
	KindExpressionBody:      "expression_body",
	KindInitializer:         "initializer",
	KindAccessorList:        "accessor_list",
	KindParameterList:       "parameter_list",
	KindParameter:           "parameter",
	KindParenthesizedLambda: "parenthesized_lambda",
	KindSimpleLambda:        "simple_lambda",
	KindAnonymousMethod:     "anonymous_method",
	KindFromClause:          "from_clause",
	KindLetClause:           "let_clause",
	KindWhereClause:         "where_clause",
	KindOrderAscending:      "order_ascending",
	KindOrderDescending:     "order_descending",
	KindSelectClause:        "select_clause",
	KindJoinClause:          "join_clause",
	KindGroupClause:         "group_clause",
	KindQueryExpression:     "query_expression",
	KindAwaitExpression:     "await_expression",
	KindYieldReturn:         "yield_return",
	KindYieldBreak:          "yield_break",
	KindLocalFunction:       "local_function",
	KindPublicModifier:      "public",
	KindPrivateModifier:     "private",
	KindProtectedModifier:   "protected",
	KindInternalModifier:    "internal",
	KindAsyncModifier:       "async",
	KindAbstractModifier:    "abstract",
	KindExternModifier:      "extern",
	KindStaticModifier:      "static",
	KindOtherModifier:       "modifier",
	KindIdentifier:          "identifier",
	KindExpression:          "expression",
	KindStatement:           "statement",
	KindKeyword:             "keyword",
	KindToken:               "token",
	KindOther:               "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsDeclaration reports whether k is a declaration kind the body locator
// and classifier accept.
func (k Kind) IsDeclaration() bool {
	switch k {
	case KindMethod, KindConversionOperator, KindOperator,
		KindGetAccessor, KindSetAccessor, KindAddAccessor, KindRemoveAccessor,
		KindConstructor, KindDestructor, KindProperty, KindIndexer:
		return true
	}
	return false
}

// IsAccessor reports whether k is one of the four accessor kinds.
func (k Kind) IsAccessor() bool {
	switch k {
	case KindGetAccessor, KindSetAccessor, KindAddAccessor, KindRemoveAccessor:
		return true
	}
	return false
}

// IsLambdaForm reports whether k is one of the three lambda forms.
func (k Kind) IsLambdaForm() bool {
	switch k {
	case KindParenthesizedLambda, KindSimpleLambda, KindAnonymousMethod:
		return true
	}
	return false
}

// IsQueryClause reports whether k is a query-clause kind. Each clause
// introduces a nested executable scope the way a lambda does.
func (k Kind) IsQueryClause() bool {
	switch k {
	case KindFromClause, KindLetClause, KindWhereClause,
		KindOrderAscending, KindOrderDescending,
		KindSelectClause, KindJoinClause, KindGroupClause:
		return true
	}
	return false
}

// IsLambdaShape reports whether k implicitly introduces a nested scope:
// the three lambda forms plus every query-clause kind.
func (k Kind) IsLambdaShape() bool {
	return k.IsLambdaForm() || k.IsQueryClause()
}

// IsModifier reports whether k is a modifier-token kind.
func (k Kind) IsModifier() bool {
	switch k {
	case KindPublicModifier, KindPrivateModifier, KindProtectedModifier,
		KindInternalModifier, KindAsyncModifier, KindAbstractModifier,
		KindExternModifier, KindStaticModifier, KindOtherModifier:
		return true
	}
	return false
}

// IsExpressionLike reports whether a node of kind k belongs to the
// expression grammar. Statement-level traversals do not descend into
// these subtrees.
func (k Kind) IsExpressionLike() bool {
	switch k {
	case KindExpression, KindIdentifier, KindAwaitExpression,
		KindQueryExpression:
		return true
	}
	return k.IsLambdaShape()
}
