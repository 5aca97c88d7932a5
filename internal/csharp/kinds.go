package csharp

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/regraft/internal/syntax"
)

// grammarKinds maps tree-sitter-c-sharp node types that lower one-to-one
// onto the closed kind set. Types needing inspection (accessors, lambdas,
// yields, orderings) are handled in lowerer.kindOf.
var grammarKinds = map[string]syntax.Kind{
	"method_declaration":              syntax.KindMethod,
	"conversion_operator_declaration": syntax.KindConversionOperator,
	"operator_declaration":            syntax.KindOperator,
	"constructor_declaration":         syntax.KindConstructor,
	"destructor_declaration":          syntax.KindDestructor,
	"property_declaration":            syntax.KindProperty,
	"indexer_declaration":             syntax.KindIndexer,
	"accessor_list":                   syntax.KindAccessorList,
	"parameter_list":                  syntax.KindParameterList,
	"parameter":                       syntax.KindParameter,
	"block":                           syntax.KindBlock,
	"arrow_expression_clause":         syntax.KindExpressionBody,
	"equals_value_clause":             syntax.KindInitializer,
	"anonymous_method_expression":     syntax.KindAnonymousMethod,
	"from_clause":                     syntax.KindFromClause,
	"let_clause":                      syntax.KindLetClause,
	"where_clause":                    syntax.KindWhereClause,
	"select_clause":                   syntax.KindSelectClause,
	"join_clause":                     syntax.KindJoinClause,
	"group_clause":                    syntax.KindGroupClause,
	"query_expression":                syntax.KindQueryExpression,
	"await_expression":                syntax.KindAwaitExpression,
	"local_function_statement":        syntax.KindLocalFunction,
	"identifier":                      syntax.KindIdentifier,
}

// modifierKinds maps modifier keywords onto their token kinds. Keywords not
// listed here (sealed, virtual, override, ...) carry no classification
// weight and collapse into KindOtherModifier.
var modifierKinds = map[string]syntax.Kind{
	"public":    syntax.KindPublicModifier,
	"private":   syntax.KindPrivateModifier,
	"protected": syntax.KindProtectedModifier,
	"internal":  syntax.KindInternalModifier,
	"async":     syntax.KindAsyncModifier,
	"abstract":  syntax.KindAbstractModifier,
	"extern":    syntax.KindExternModifier,
	"static":    syntax.KindStaticModifier,
}

// accessorKinds maps the accessor keyword to the accessor kind. An init
// accessor classifies as a setter: it occupies the setter slot of the
// accessor list and has the same body rules.
var accessorKinds = map[string]syntax.Kind{
	"get":    syntax.KindGetAccessor,
	"set":    syntax.KindSetAccessor,
	"init":   syntax.KindSetAccessor,
	"add":    syntax.KindAddAccessor,
	"remove": syntax.KindRemoveAccessor,
}

func modifierKind(text string) syntax.Kind {
	if k, ok := modifierKinds[text]; ok {
		return k
	}
	return syntax.KindOtherModifier
}

// hasChildOfType reports whether any direct child (named or anonymous) has
// the given grammar type.
func hasChildOfType(n *sitter.Node, typ string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == typ {
			return true
		}
	}
	return false
}
