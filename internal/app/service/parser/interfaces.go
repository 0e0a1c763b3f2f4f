// Package parser holds the text-structure parser collaborator: the
// component spec §1 calls out as external to the core, responsible for
// turning raw source bytes into the Lines/Tokens/CST triple a
// TextStructureView carries (spec §3, §6).
package parser

import "github.com/hdllint/corelint/internal/domain/value"

// Parser builds a TextStructureView from one document's source bytes.
// A parser that cannot build a syntax tree still returns a view with
// Lines and Tokens populated and CSTRoot nil, recording the failure in
// ParseError rather than returning an error — the line and token-stream
// tiers still have something to run over (spec §7 ParseFailure).
type Parser interface {
	Parse(source, filename string) (*value.TextStructureView, error)
}
