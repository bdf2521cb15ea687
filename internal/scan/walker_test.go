package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelscutari/sls/internal/entry"
	"github.com/michaelscutari/sls/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// makeTree lays out:
//
//	root/
//	  .hiddenfile
//	  Cargo.toml
//	  src/
//	    lib.rs
//	    main.rs
//	    nested/
//	      deep.md
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		".hiddenfile":        "test",
		"Cargo.toml":         "[package]\n",
		"src/lib.rs":         "pub fn x() {}\n",
		"src/main.rs":        "fn main() {}\n",
		"src/nested/deep.md": "# deep\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func paths(root string, recs []entry.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		rel, err := filepath.Rel(root, r.Path)
		if err != nil {
			rel = r.Path
		}
		out = append(out, rel)
	}
	return out
}

func walk(t *testing.T, root string, b *filter.Builder) []entry.Record {
	t.Helper()
	cfg, err := b.Build()
	require.NoError(t, err)
	recs, err := NewWalker(cfg, nil).Walk(context.Background(), root)
	require.NoError(t, err)
	return recs
}

func TestWalkPreOrderByName(t *testing.T) {
	root := makeTree(t)
	recs := walk(t, root, filter.NewBuilder(nil).WithHidden(true))

	assert.Equal(t, []string{
		".",
		".hiddenfile",
		"Cargo.toml",
		"src",
		"src/lib.rs",
		"src/main.rs",
		"src/nested",
		"src/nested/deep.md",
	}, paths(root, recs))

	assert.Equal(t, 0, recs[0].Depth)
	assert.True(t, recs[0].IsDir())
	assert.Equal(t, 3, recs[len(recs)-1].Depth)
}

func TestWalkHidesDotfilesByDefault(t *testing.T) {
	root := makeTree(t)
	recs := walk(t, root, filter.NewBuilder(nil))
	assert.NotContains(t, paths(root, recs), ".hiddenfile")
	assert.Contains(t, paths(root, recs), "src/main.rs")
}

func TestWalkDepthBound(t *testing.T) {
	root := makeTree(t)

	recs := walk(t, root, filter.NewBuilder(nil).WithMaxDepth(0))
	assert.Equal(t, []string{"."}, paths(root, recs))

	recs = walk(t, root, filter.NewBuilder(nil).WithMaxDepth(1))
	assert.Equal(t, []string{".", "Cargo.toml", "src"}, paths(root, recs))
}

func TestWalkFilteredIsOrderedSubset(t *testing.T) {
	root := makeTree(t)
	all := paths(root, walk(t, root, filter.NewBuilder(nil).WithHidden(true)))

	configs := []*filter.Builder{
		filter.NewBuilder(nil).WithExtension("rs"),
		filter.NewBuilder(nil).WithMinSize("10"),
		filter.NewBuilder(nil).WithInclude("*.md"),
		filter.NewBuilder(nil).WithExclude("*.rs").WithMaxDepth(2),
	}
	for _, b := range configs {
		got := paths(root, walk(t, root, b))
		j := 0
		for _, p := range got {
			for j < len(all) && all[j] != p {
				j++
			}
			require.Less(t, j, len(all), "%q missing or out of order", p)
			j++
		}
	}
}

func TestWalkExtensionFilter(t *testing.T) {
	root := makeTree(t)
	recs := walk(t, root, filter.NewBuilder(nil).WithExtension("rs"))
	assert.Equal(t, []string{"src/lib.rs", "src/main.rs"}, paths(root, recs))
}

func TestWalkMinSizeExcludesSmallFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "small.txt"), []byte("tiny"), 0o644))

	recs := walk(t, root, filter.NewBuilder(nil).WithMinSize("10"))
	assert.Empty(t, recs)
}

func TestWalkDoesNotFollowSymlinks(t *testing.T) {
	root := makeTree(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "src"), filepath.Join(root, "link")))

	recs := walk(t, root, filter.NewBuilder(nil))
	got := paths(root, recs)
	assert.Contains(t, got, "link")
	assert.NotContains(t, got, "link/main.rs")

	for _, r := range recs {
		if r.Name == "link" {
			assert.Equal(t, entry.KindSymlink, r.Kind)
			assert.False(t, r.IsDir())
		}
	}
}

func TestWalkMissingRootIsEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg, err := filter.NewBuilder(nil).Build()
	require.NoError(t, err)

	w := NewWalker(cfg, zap.New(core))
	recs, err := w.Walk(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
	assert.Equal(t, int64(1), w.Stats().Skipped)
	assert.Equal(t, 1, logs.FilterMessage("Error accessing path").Len())
}

func TestWalkUnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := makeTree(t)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "secret.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	cfg, err := filter.NewBuilder(nil).Build()
	require.NoError(t, err)
	w := NewWalker(cfg, nil)
	recs, err := w.Walk(context.Background(), root)
	require.NoError(t, err)

	got := paths(root, recs)
	assert.Contains(t, got, "locked")
	assert.NotContains(t, got, "locked/secret.txt")
	assert.Contains(t, got, "src/main.rs")
	assert.Equal(t, int64(1), w.Stats().DirErrs)
}

func TestWalkHonorsCancellation(t *testing.T) {
	root := makeTree(t)
	cfg, err := filter.NewBuilder(nil).Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs, err := NewWalker(cfg, nil).Walk(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, recs)
}

func TestWalkStats(t *testing.T) {
	root := makeTree(t)
	cfg, err := filter.NewBuilder(nil).WithExtension("rs").Build()
	require.NoError(t, err)

	w := NewWalker(cfg, nil)
	_, err = w.Walk(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, Stats{Visited: 8, Matched: 2}, w.Stats())
}

func TestWalkKeepsRootAsTyped(t *testing.T) {
	chdir(t, makeTree(t))

	for _, root := range []string{"./src", "./src/"} {
		recs := walk(t, root, filter.NewBuilder(nil))
		got := make([]string, 0, len(recs))
		for _, r := range recs {
			got = append(got, r.Path)
		}
		assert.Equal(t, []string{
			root,
			"./src/lib.rs",
			"./src/main.rs",
			"./src/nested",
			"./src/nested/deep.md",
		}, got, root)
		assert.Equal(t, "src", recs[0].Name)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
