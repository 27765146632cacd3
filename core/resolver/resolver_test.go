package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/run/core/parser"
)

func runfileWith(commands ...parser.Command) *parser.Runfile {
	return &parser.Runfile{Commands: commands}
}

func TestResolve(t *testing.T) {
	runfile := runfileWith(
		parser.Command{Names: []string{"b", "build", "compile"}, Script: "make all"},
		parser.Command{Names: []string{"t", "test"}, Script: "make test"},
	)

	t.Run("primary name", func(t *testing.T) {
		cmd, err := Resolve(runfile, "b")
		require.NoError(t, err)
		assert.Equal(t, "make all", cmd.Script)
	})

	t.Run("secondary alias", func(t *testing.T) {
		cmd, err := Resolve(runfile, "compile")
		require.NoError(t, err)
		assert.Equal(t, "make all", cmd.Script)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Resolve(runfile, "lint")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "lint", notFound.Name)
	})
}

func TestResolve_FirstMatchWins(t *testing.T) {
	runfile := runfileWith(
		parser.Command{Names: []string{"deploy"}, Script: "first"},
		parser.Command{Names: []string{"deploy"}, Script: "second"},
	)

	cmd, err := Resolve(runfile, "deploy")
	require.NoError(t, err)
	assert.Equal(t, "first", cmd.Script)
}

func TestResolve_Validation(t *testing.T) {
	cases := map[string]struct {
		cmd     parser.Command
		wantErr any
	}{
		"duplicate argument names": {
			cmd: parser.Command{
				Names:  []string{"x"},
				Args:   []parser.Argument{{Name: "file"}, {Name: "file"}},
				Script: "true",
			},
			wantErr: new(*DuplicateArgumentError),
		},
		"multiple variadic arguments": {
			cmd: parser.Command{
				Names: []string{"x"},
				Args: []parser.Argument{
					{Name: "a", Variadic: true},
					{Name: "b", Variadic: true},
				},
				Script: "true",
			},
			wantErr: new(*MultipleVarargsError),
		},
		"variadic not last": {
			cmd: parser.Command{
				Names: []string{"x"},
				Args: []parser.Argument{
					{Name: "rest", Variadic: true},
					{Name: "after"},
				},
				Script: "true",
			},
			wantErr: new(*VarargsNotLastError),
		},
		"duplicate long flag": {
			cmd: parser.Command{
				Names: []string{"x"},
				Flags: []parser.Flag{
					{Long: "force"},
					{Long: "force"},
				},
				Script: "true",
			},
			wantErr: new(*DuplicateFlagError),
		},
		"short key shadows a long name": {
			cmd: parser.Command{
				Names: []string{"x"},
				Flags: []parser.Flag{
					{Long: "f"},
					{Long: "force", Short: 'f'},
				},
				Script: "true",
			},
			wantErr: new(*DuplicateFlagError),
		},
		"empty script": {
			cmd: parser.Command{
				Names:  []string{"x"},
				Script: "  \n\t",
			},
			wantErr: new(*EmptyScriptError),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(runfileWith(tc.cmd), "x")
			require.Error(t, err)
			require.ErrorAs(t, err, tc.wantErr)
		})
	}
}

func TestResolve_ValidCommands(t *testing.T) {
	cases := map[string]parser.Command{
		"trailing variadic": {
			Names: []string{"x"},
			Args: []parser.Argument{
				{Name: "first"},
				{Name: "rest", Variadic: true},
			},
			Script: "true",
		},
		"short only flag": {
			Names:  []string{"x"},
			Flags:  []parser.Flag{{Long: "x", Short: 'x'}},
			Script: "true",
		},
		"distinct flags": {
			Names: []string{"x"},
			Flags: []parser.Flag{
				{Long: "force", Short: 'f'},
				{Long: "verbose", Short: 'v'},
			},
			Script: "true",
		},
	}

	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(runfileWith(cmd), "x")
			require.NoError(t, err)
			assert.Equal(t, cmd.Names, got.Names)
		})
	}
}
