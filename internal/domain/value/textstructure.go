package value

// Line is one physical line of source text together with the byte offset
// its first byte occupies (the "line table" of the GLOSSARY). Text excludes
// the line terminator.
type Line struct {
	Text   string
	Offset int
}

// TextStructureView is the immutable, post-parse artifact the parser
// collaborator produces and lends to the four linters for the duration
// of one document (spec §3, §6). All byte offsets in Lines, Tokens and
// the CST refer into Source; none of them own copies of it.
type TextStructureView struct {
	Source   string
	Filename string
	Lines    []Line
	Tokens   []Token

	// CSTRoot is absent when the parser collaborator reports a
	// ParseFailure (spec §7): the view is still resilient enough for the
	// token-stream and text-structure passes to run on whatever partial
	// input is available, but the syntax-tree pass is skipped.
	CSTRoot    *CSTNode
	ParseError error
}

// HasSyntaxTree reports whether a syntax-tree pass can run over this view.
func (v *TextStructureView) HasSyntaxTree() bool {
	return v.CSTRoot != nil
}

// LineAt returns the 1-based line number containing offset, via a linear
// scan of the line table. Returns the last line if offset runs past EOF.
func (v *TextStructureView) LineAt(offset int) int {
	line := 1
	for i, l := range v.Lines {
		if offset < l.Offset {
			break
		}
		line = i + 1
	}
	return line
}

// ColumnAt returns the 1-based, code-unit column of offset within its
// line (spec §6: "Column uses code-unit counting on the source bytes").
func (v *TextStructureView) ColumnAt(offset int) int {
	lineNo := v.LineAt(offset)
	if lineNo-1 >= len(v.Lines) {
		return 1
	}
	return offset - v.Lines[lineNo-1].Offset + 1
}

// PositionAt builds a full Position (line, column, offset) for a byte
// offset into Source.
func (v *TextStructureView) PositionAt(offset int) Position {
	return Position{Line: v.LineAt(offset), Column: v.ColumnAt(offset), Offset: offset}
}
