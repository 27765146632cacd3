package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/run/core/lexer"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		tokens []lexer.Token
		want   *Runfile
	}{
		"command under a group": {
			tokens: []lexer.Token{
				lexer.GroupHeader{Name: "Build"},
				lexer.CommandHeader{Names: []string{"b", "build"}, Comment: "Compile."},
				lexer.Argument{Name: "target", Optional: true},
				lexer.Flag{Long: "release", Short: 'r'},
				lexer.ScriptLine{Text: "make \"$TARGET\""},
			},
			want: &Runfile{
				Groups: []Group{{Name: "Build"}},
				Commands: []Command{{
					Names:       []string{"b", "build"},
					Description: "Compile.",
					Group:       "Build",
					Args:        []Argument{{Name: "target", Optional: true}},
					Flags:       []Flag{{Short: 'r', Long: "release"}},
					Script:      "make \"$TARGET\"",
					Shebang:     DefaultShebang,
				}},
			},
		},
		"shebang on the first script line": {
			tokens: []lexer.Token{
				lexer.CommandHeader{Names: []string{"plot"}},
				lexer.ScriptLine{Text: "#!/usr/bin/env python3"},
				lexer.ScriptLine{Text: "print(\"hi\")"},
			},
			want: &Runfile{
				Commands: []Command{{
					Names:   []string{"plot"},
					Script:  "#!/usr/bin/env python3\nprint(\"hi\")",
					Shebang: "#!/usr/bin/env python3",
				}},
			},
		},
		"inline declarations carry over": {
			tokens: []lexer.Token{
				lexer.CommandHeader{
					Names: []string{"deploy"},
					Args:  []lexer.Argument{{Name: "env"}, {Name: "files", Optional: true, Variadic: true}},
					Flags: []lexer.Flag{{Long: "force"}},
				},
				lexer.ScriptLine{Text: "scp build.tgz server:/srv"},
			},
			want: &Runfile{
				Commands: []Command{{
					Names:   []string{"deploy"},
					Args:    []Argument{{Name: "env"}, {Name: "files", Optional: true, Variadic: true}},
					Flags:   []Flag{{Long: "force"}},
					Script:  "scp build.tgz server:/srv",
					Shebang: DefaultShebang,
				}},
			},
		},
		"declarations after script start render as text": {
			tokens: []lexer.Token{
				lexer.CommandHeader{Names: []string{"x"}},
				lexer.ScriptLine{Text: "first line"},
				lexer.Argument{Name: "done"},
				lexer.Flag{Long: "verbose", Short: 'v'},
				lexer.Flag{Long: "force"},
			},
			want: &Runfile{
				Commands: []Command{{
					Names:   []string{"x"},
					Script:  "first line\ndone\n-v, --verbose\n- , --force",
					Shebang: DefaultShebang,
				}},
			},
		},
		"comment starts the script body": {
			tokens: []lexer.Token{
				lexer.CommandHeader{Names: []string{"x"}},
				lexer.Comment{Text: "# setup"},
				lexer.Argument{Name: "late"},
			},
			want: &Runfile{
				Commands: []Command{{
					Names:   []string{"x"},
					Script:  "# setup\nlate",
					Shebang: DefaultShebang,
				}},
			},
		},
		"tokens before any header are dropped": {
			tokens: []lexer.Token{
				lexer.ScriptLine{Text: "stray"},
				lexer.Argument{Name: "orphan"},
				lexer.Comment{Text: "# nothing"},
			},
			want: &Runfile{},
		},
		"group resets at each banner": {
			tokens: []lexer.Token{
				lexer.CommandHeader{Names: []string{"top"}},
				lexer.ScriptLine{Text: "true"},
				lexer.GroupHeader{Name: "One"},
				lexer.CommandHeader{Names: []string{"a"}},
				lexer.ScriptLine{Text: "true"},
				lexer.GroupHeader{Name: "Two"},
				lexer.CommandHeader{Names: []string{"b"}},
				lexer.ScriptLine{Text: "true"},
			},
			want: &Runfile{
				Groups: []Group{{Name: "One"}, {Name: "Two"}},
				Commands: []Command{
					{Names: []string{"top"}, Script: "true", Shebang: DefaultShebang},
					{Names: []string{"a"}, Group: "One", Script: "true", Shebang: DefaultShebang},
					{Names: []string{"b"}, Group: "Two", Script: "true", Shebang: DefaultShebang},
				},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Parse(tc.tokens)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("runfile mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EndToEnd(t *testing.T) {
	input := "# ----\n" +
		"# Release\n" +
		"# ----\n" +
		"# Ship a version.\n" +
		"ship version ...files:\n" +
		"  --force\n" +
		"  scp $FILES server:/srv/$VERSION\n"

	tokens, err := lexer.Lex(input)
	require.NoError(t, err)

	want := &Runfile{
		Groups: []Group{{Name: "Release"}},
		Commands: []Command{{
			Names:       []string{"ship"},
			Description: "Ship a version.",
			Group:       "Release",
			Args: []Argument{
				{Name: "version"},
				{Name: "files", Optional: true, Variadic: true},
			},
			Flags:   []Flag{{Long: "force"}},
			Script:  "  scp $FILES server:/srv/$VERSION",
			Shebang: DefaultShebang,
		}},
	}

	got := Parse(tokens)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runfile mismatch (-want +got):\n%s", diff)
	}
}

func TestCommand_Name(t *testing.T) {
	cmd := &Command{Names: []string{"b", "build"}}
	assert.Equal(t, "b", cmd.Name())

	empty := &Command{}
	assert.Equal(t, "", empty.Name())
}
