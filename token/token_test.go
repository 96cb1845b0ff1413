package token_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/teleivo/gopp/token"
)

func TestKindString(t *testing.T) {
	tests := map[string]struct {
		in   token.Kind
		want string
	}{
		"keyword constant": {token.KeywordConstant, "keyword-constant"},
		"builtin name":     {token.BuiltinName, "builtin-name"},
		"comment":          {token.CommentSingle, "comment"},
		"unknown":          {token.Kind(0), "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, tt.in.String(), tt.want, "Kind(%d).String()", tt.in)
		})
	}
}

func TestCommentPlacement(t *testing.T) {
	c := token.Comment{Text: "hello", Placement: token.Trailing}
	assert.EqualValues(t, c.Placement, token.Trailing, "Comment.Placement")
}
