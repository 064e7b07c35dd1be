package textscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type wsResult struct {
	Skip   int
	TokLen int
	Tok    string
	TokOK  bool
}

func wsAt(p Whitespace, s string) wsResult {
	n, tok, ok := p.Token(s)
	return wsResult{Skip: p.Skip(s), TokLen: n, Tok: tok, TokOK: ok}
}

func TestWhitespacePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Whitespace
		input  string
		want   wsResult
	}{
		{"skip all", SkipAll{}, "", wsResult{}},
		{"skip all", SkipAll{}, " ", wsResult{Skip: 1}},
		{"skip all", SkipAll{}, "\t", wsResult{Skip: 1}},
		{"skip all", SkipAll{}, "\r", wsResult{Skip: 1}},
		{"skip all", SkipAll{}, "\n", wsResult{Skip: 1}},
		{"skip all", SkipAll{}, "\r\n", wsResult{Skip: 2}},
		{"skip all", SkipAll{}, " \t\r\n  x ", wsResult{Skip: 6}},

		{"skip none", SkipNone{}, " \t\r\n  x ", wsResult{}},

		{"explicit newline", ExplicitNewline{}, "", wsResult{}},
		{"explicit newline", ExplicitNewline{}, " ", wsResult{Skip: 1}},
		{"explicit newline", ExplicitNewline{}, "\t", wsResult{Skip: 1}},
		{"explicit newline", ExplicitNewline{}, "\r", wsResult{TokLen: 1, Tok: "\n", TokOK: true}},
		{"explicit newline", ExplicitNewline{}, "\n", wsResult{TokLen: 1, Tok: "\n", TokOK: true}},
		{"explicit newline", ExplicitNewline{}, "\r\n", wsResult{TokLen: 2, Tok: "\n", TokOK: true}},
		{"explicit newline", ExplicitNewline{}, " \t\r\n  x ", wsResult{Skip: 2}},

		{"explicit space", ExplicitSpace{}, "", wsResult{}},
		{"explicit space", ExplicitSpace{}, " ", wsResult{TokLen: 1, Tok: " ", TokOK: true}},
		{"explicit space", ExplicitSpace{}, "\t", wsResult{TokLen: 1, Tok: " ", TokOK: true}},
		{"explicit space", ExplicitSpace{}, "\r", wsResult{TokLen: 1, Tok: "\n", TokOK: true}},
		{"explicit space", ExplicitSpace{}, "\r\n", wsResult{TokLen: 2, Tok: "\n", TokOK: true}},
		{"explicit space", ExplicitSpace{}, " \t\r\n  x ", wsResult{TokLen: 2, Tok: " ", TokOK: true}},

		{"explicit any", ExplicitAny{}, "", wsResult{}},
		{"explicit any", ExplicitAny{}, "\r\n", wsResult{TokLen: 2, Tok: " ", TokOK: true}},
		{"explicit any", ExplicitAny{}, " \t\r\n  x ", wsResult{TokLen: 6, Tok: " ", TokOK: true}},

		{"exact space", ExactSpace{}, "", wsResult{}},
		{"exact space", ExactSpace{}, " ", wsResult{TokLen: 1, Tok: " ", TokOK: true}},
		{"exact space", ExactSpace{}, "\t", wsResult{TokLen: 1, Tok: "\t", TokOK: true}},
		{"exact space", ExactSpace{}, "\r\n", wsResult{TokLen: 2, Tok: "\r\n", TokOK: true}},
		{"exact space", ExactSpace{}, " \t\r\n  x ", wsResult{TokLen: 1, Tok: " ", TokOK: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wsAt(tt.policy, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%q: (-want, +got)\n%s", tt.input, diff)
			}
		})
	}
}

func TestSkipRunes(t *testing.T) {
	underscores := SkipRunes{Pred: func(r rune) bool { return r == '_' }}
	if got := underscores.Skip("___x_"); got != 3 {
		t.Errorf("Skip(\"___x_\") = %d, want 3", got)
	}
	if got := underscores.Skip(" _"); got != 0 {
		t.Errorf("Skip(\" _\") = %d, want 0", got)
	}
}
