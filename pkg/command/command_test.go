package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/antgroup/levdiff/modules/chardet"
	"github.com/antgroup/levdiff/modules/env"
	"github.com/antgroup/levdiff/pkg/config"
	"github.com/antgroup/levdiff/pkg/levdiff"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	Globals
	Diff    Diff    `cmd:"" default:"withargs" help:"Compare two files line by line"`
	Version Version `cmd:"" help:"Display version information"`
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(env.LEVDIFF_CONFIG_SYSTEM, filepath.Join(dir, "missing.toml"))
	t.Setenv(env.TRACE, "")
	return dir
}

func parse(t *testing.T, app *testApp, args ...string) *kong.Context {
	t.Helper()
	parser, err := kong.New(app,
		kong.Name("levdiff"),
		kong.NamedMapper("size", SizeDecoder()),
		kong.Exit(func(int) { t.Fatalf("unexpected exit") }),
	)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx
}

func TestDiffDefaultCommand(t *testing.T) {
	dir := isolate(t)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\nb\nc\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("a\nx\nc\n"), 0644))

	var app testApp
	ctx := parse(t, &app, a, b, "--max-size", "1m", "-X", "diff.renumber=true")
	require.Equal(t, a, app.Diff.From)
	require.Equal(t, []string{"diff.renumber=true"}, app.Values)
	require.Equal(t, int64(1<<20), app.Diff.MaxSize)

	var out bytes.Buffer
	app.Diff.stdout = &out
	require.NoError(t, ctx.Run(&app.Globals))
	require.Equal(t, "1  | a\n2 ~| b ⇆  x\n3  | c\n", out.String())
}

func TestDiffExitCode(t *testing.T) {
	dir := isolate(t)
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\n"), 0644))

	var app testApp
	ctx := parse(t, &app, "diff", "--exit-code", "--stat", a, "-")
	app.Diff.stdin = bytes.NewBufferString("b\n")
	var out bytes.Buffer
	app.Diff.stdout = &out
	err := ctx.Run(&app.Globals)
	require.True(t, levdiff.IsExitCode(err, 1))
	require.Equal(t, "0 addition(+), 0 deletion(-), 1 substitution(~), distance 1\n", out.String())
}

func TestDiffNewOptions(t *testing.T) {
	isolate(t)
	pager := "less -S"
	cfg := &config.Config{
		Diff: config.Diff{
			Color:    config.ColorNever,
			Renumber: config.True,
			MaxSize:  config.Size{Size: 2048},
			Encoding: "gbk",
			Pager:    &pager,
		},
		Color: config.Color{"old": "magenta"},
	}
	g := &Globals{}
	c := &Diff{From: "a", To: "b"}
	opts, err := c.NewOptions(g, cfg)
	require.NoError(t, err)
	require.Equal(t, config.ColorNever, opts.Color)
	require.True(t, opts.Renumber)
	require.False(t, opts.Trace)
	require.Equal(t, int64(2048), opts.MaxSize)
	require.Equal(t, "gbk", opts.Encoding)
	require.Equal(t, &pager, opts.Pager)
	require.NotEqual(t, "\033[31m", opts.Colors["old"])

	c = &Diff{From: "a", To: "b", Color: "always", MaxSize: 10, Encoding: "utf-8"}
	t.Setenv(env.TRACE, "1")
	opts, err = c.NewOptions(g, cfg)
	require.NoError(t, err)
	require.Equal(t, config.ColorAlways, opts.Color)
	require.True(t, opts.Trace)
	require.Equal(t, int64(10), opts.MaxSize)
	require.Equal(t, "utf-8", opts.Encoding)

	c.Color = "rainbow"
	_, err = c.NewOptions(g, cfg)
	require.ErrorIs(t, err, config.ErrInvalidArgument)

	c.Color = ""
	c.Encoding = "klingon"
	_, err = c.NewOptions(g, cfg)
	require.ErrorIs(t, err, chardet.ErrUnknownCharset)
	require.Contains(t, err.Error(), "gbk")
}

func TestDiffBadConfigValue(t *testing.T) {
	dir := isolate(t)
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\n"), 0644))
	var app testApp
	ctx := parse(t, &app, a, a, "-X", "diff.nothing=1")
	app.Diff.stdout = &bytes.Buffer{}
	err := ctx.Run(&app.Globals)
	require.True(t, config.IsErrBadConfigKey(err))
}

func TestVersionJSON(t *testing.T) {
	var app testApp
	ctx := parse(t, &app, "version", "--json")
	var out bytes.Buffer
	app.Version.out = &out
	require.NoError(t, ctx.Run(&app.Globals))
	var m map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &m))
	require.Contains(t, m, "version")
	require.Contains(t, m, "os")
}
