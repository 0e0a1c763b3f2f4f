package parser

import (
	"fmt"

	"github.com/hdllint/corelint/internal/domain/value"
)

// HDLParser is the built-in parser collaborator: a small hand-rolled
// recognizer for a Verilog/SystemVerilog-like module grammar, just
// enough to support the reference rules and the module/filename,
// macro-token and line-length scenarios this core ships tests for. It
// is not a full HDL front end — nested module/package/class bodies are
// not individually structured, matching the scope spec §1 draws around
// the core (the CST only needs to expose module headers and end
// labels; everything else stays a flat token run inside the body).
type HDLParser struct{}

// NewHDLParser builds the built-in parser collaborator.
func NewHDLParser() *HDLParser { return &HDLParser{} }

// Parse implements Parser.
func (p *HDLParser) Parse(source, filename string) (*value.TextStructureView, error) {
	tokens := lex(source)
	lines := splitLines(source)

	significant := make([]value.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != KindComment {
			significant = append(significant, t)
		}
	}

	root, parseErr := buildSourceFile(significant)

	return &value.TextStructureView{
		Source:     source,
		Filename:   filename,
		Lines:      lines,
		Tokens:     tokens,
		CSTRoot:    root,
		ParseError: parseErr,
	}, nil
}

// buildSourceFile recognizes a flat sequence of module declarations,
// returning a nil root (with a descriptive error) if any module keyword
// never reaches a matching endmodule — a ParseFailure per spec §7, not a
// Go error, since the token stream is still perfectly usable.
func buildSourceFile(tokens []value.Token) (*value.CSTNode, error) {
	var children []value.CSTNode
	var parseErr error

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if tok.Kind == KindKeyword && tok.Text == "module" {
			decl, next, err := parseModuleDeclaration(tokens, i)
			if err != nil {
				if parseErr == nil {
					parseErr = err
				}
				i++
				continue
			}
			children = append(children, decl)
			i = next
			continue
		}
		children = append(children, value.NewLeaf(tok))
		i++
	}

	root := value.NewBranch(TagSourceFile, children...)
	if parseErr != nil {
		return nil, parseErr
	}
	return &root, nil
}

// parseModuleDeclaration parses starting at tokens[start] == "module"
// and returns the branch node plus the index just past the matching
// endmodule (and its optional end label).
func parseModuleDeclaration(tokens []value.Token, start int) (value.CSTNode, int, error) {
	i := start + 1
	var headerChildren []value.CSTNode
	headerChildren = append(headerChildren, value.NewLeaf(tokens[start]))

	if i >= len(tokens) || tokens[i].Kind != KindIdentifier {
		return value.CSTNode{}, 0, fmt.Errorf("module keyword at offset %d not followed by an identifier", tokens[start].Range.Start.Offset)
	}
	nameToken := tokens[i]
	headerChildren = append(headerChildren, value.NewLeaf(nameToken))
	i++

	// Consume the rest of the header up to the first top-level ';',
	// counting parens so `#(...)(...)` parameter/port lists don't
	// confuse the boundary.
	depth := 0
	for i < len(tokens) {
		t := tokens[i]
		if t.Kind == KindPunct && t.Text == "(" {
			depth++
		}
		if t.Kind == KindPunct && t.Text == ")" {
			depth--
		}
		headerChildren = append(headerChildren, value.NewLeaf(t))
		i++
		if depth == 0 && t.Kind == KindPunct && t.Text == ";" {
			break
		}
	}
	header := value.NewBranch(TagModuleHeader, headerChildren...)

	var bodyChildren []value.CSTNode
	var endLabel *value.CSTNode
	for i < len(tokens) {
		t := tokens[i]
		if t.Kind == KindKeyword && t.Text == "endmodule" {
			i++
			if i < len(tokens) && tokens[i].Kind == KindPunct && tokens[i].Text == ":" {
				i++
				if i < len(tokens) && tokens[i].Kind == KindIdentifier {
					leaf := value.NewLeaf(tokens[i])
					endLabel = &leaf
					i++
				}
			}
			body := value.NewBranch(TagModuleBody, bodyChildren...)
			children := []value.CSTNode{header, body}
			if endLabel != nil {
				children = append(children, value.NewBranch(TagModuleEndLabel, *endLabel))
			}
			return value.NewBranch(TagModuleDeclaration, children...), i, nil
		}
		bodyChildren = append(bodyChildren, value.NewLeaf(t))
		i++
	}

	return value.CSTNode{}, 0, fmt.Errorf("module %q at offset %d has no matching endmodule", nameToken.Text, tokens[start].Range.Start.Offset)
}

// ModuleName returns the identifier leaf naming decl, and ok=false if
// decl is not a well-formed kModuleDeclaration/kModuleHeader pair.
func ModuleName(decl value.CSTNode) (value.Token, bool) {
	if !decl.IsBranch() || decl.Tag() != TagModuleDeclaration {
		return value.Token{}, false
	}
	children := decl.Children()
	if len(children) == 0 || !children[0].IsBranch() || children[0].Tag() != TagModuleHeader {
		return value.Token{}, false
	}
	header := children[0].Children()
	if len(header) < 2 || !header[1].IsLeaf() {
		return value.Token{}, false
	}
	return header[1].Token(), true
}

// ModuleEndLabel returns the identifier leaf naming decl's `endmodule :
// name` label, and ok=false if decl has no such label.
func ModuleEndLabel(decl value.CSTNode) (value.Token, bool) {
	if !decl.IsBranch() || decl.Tag() != TagModuleDeclaration {
		return value.Token{}, false
	}
	for _, c := range decl.Children() {
		if c.IsBranch() && c.Tag() == TagModuleEndLabel {
			kids := c.Children()
			if len(kids) == 1 && kids[0].IsLeaf() {
				return kids[0].Token(), true
			}
		}
	}
	return value.Token{}, false
}
