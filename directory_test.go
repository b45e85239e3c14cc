package buildassert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

func TestDirectory_TreeFromDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "classes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "classes", "App.class"), nil, 0o644))

	expectPass(t, func(rt TestingT) {
		dir := ThatDirectory(rt, buildtest.NewDirectory(root))
		dir.AsFile().IsDirectory()
		dir.AsString().IsEqualTo(root)
		dir.Files().HasSingleFile().Contains(host.File(filepath.Join(root, "classes", "App.class")))
	})
}

func TestDirectory_ExplicitTree(t *testing.T) {
	dir := buildtest.NewDirectory("/work/build").WithTree("a.txt", "sub/b.txt")

	expectPass(t, func(rt TestingT) {
		ThatDirectory(rt, dir).Files().AsFiles().
			ContainsExactlyInAnyOrder("/work/build/a.txt", "/work/build/sub/b.txt")
	})
}

func TestDirectory_MissingIsEmpty(t *testing.T) {
	expectPass(t, func(rt TestingT) {
		ThatDirectory(rt, buildtest.NewDirectory(filepath.Join(t.TempDir(), "missing"))).Files().IsEmpty()
	})
}

func TestRegularFile(t *testing.T) {
	file := buildtest.NewRegularFile("build/libs/app.jar")

	expectPass(t, func(rt TestingT) {
		ThatRegularFile(rt, file).AsFile().HasParent(host.File("build/libs"))
		ThatRegularFile(rt, file).AsString().IsEqualTo("build/libs/app.jar")
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatRegularFile(rt, nil).AsFile()
	})
	assert.Equal(t, "Expecting actual not to be nil", msg)
}
