package parser

import "github.com/hdllint/corelint/internal/domain/value"

// Token kinds this package's lexer produces. Registered with the value
// package so diagnostics and tests can print them by name instead of a
// bare integer (spec §3's Token is otherwise opaque about Kind naming).
var (
	KindIdentifier = registerKind(1, "identifier")
	KindKeyword    = registerKind(2, "keyword")
	KindString     = registerKind(3, "string-literal")
	KindNumber     = registerKind(4, "number-literal")
	KindComment    = registerKind(5, "comment")
	KindPunct      = registerKind(6, "punctuation")
	KindMacroToken = registerKind(7, "macro-token")
	KindOther      = registerKind(8, "other")
)

func registerKind(id int, name string) value.TokenKind {
	kind := value.TokenKind(id)
	value.RegisterTokenKindName(kind, name)
	return kind
}

// Nonterminal tags the module-declaration grammar below produces.
var (
	TagSourceFile        = registerTag(1, "kSourceFile")
	TagModuleDeclaration = registerTag(2, "kModuleDeclaration")
	TagModuleHeader      = registerTag(3, "kModuleHeader")
	TagModuleBody        = registerTag(4, "kModuleBody")
	TagModuleEndLabel    = registerTag(5, "kModuleEndLabel")
)

func registerTag(id int, name string) value.NonterminalTag {
	tag := value.NonterminalTag(id)
	value.RegisterNonterminalTagName(tag, name)
	return tag
}

var hdlKeywords = map[string]bool{
	"module": true, "endmodule": true,
	"package": true, "endpackage": true,
	"class": true, "endclass": true,
	"interface": true, "endinterface": true,
	"input": true, "output": true, "inout": true, "logic": true, "wire": true, "reg": true,
	"parameter": true, "localparam": true,
}
