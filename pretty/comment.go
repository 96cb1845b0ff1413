package pretty

import (
	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/token"
)

// commentedValue wraps a value with a comment to be rendered above it by
// the parent printer (or the top level, for a root value).
type commentedValue struct {
	value   any
	comment string
}

// trailingCommentedValue wraps a value with a comment to be rendered in
// place of the container's last child, forcing the container to break.
type trailingCommentedValue struct {
	value   any
	comment string
}

// WithComment annotates value with a comment that the dispatcher will
// attach to its rendered Doc. If v is itself a [doc.Doc], the comment is
// attached directly rather than wrapping a new value-level marker.
func WithComment(v any, commentText string) any {
	if d, ok := v.(doc.Doc); ok {
		return doc.Annotated{Doc: d, Annotation: token.Comment{Text: commentText, Placement: token.Above}}
	}
	return commentedValue{value: v, comment: commentText}
}

// WithTrailingComment annotates value so that its container renders an
// extra comment line in place of the last child, per spec.md §6.
func WithTrailingComment(v any, commentText string) any {
	return trailingCommentedValue{value: v, comment: commentText}
}

func asCommentAnnotation(text string) token.Comment {
	return token.Comment{Text: text, Placement: token.Above}
}

// unwrapComments strips any number of nested comment wrappers from v,
// returning the innermost value along with the last above/trailing
// comment text seen of each kind.
func unwrapComments(v any) (inner any, comment, trailing string, hasComment, hasTrailing bool) {
	inner = v
	for {
		switch t := inner.(type) {
		case commentedValue:
			comment, hasComment = t.comment, true
			inner = t.value
		case trailingCommentedValue:
			trailing, hasTrailing = t.comment, true
			inner = t.value
		default:
			return inner, comment, trailing, hasComment, hasTrailing
		}
	}
}
