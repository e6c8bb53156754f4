package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/image-copier/internal/convert"
)

// setupSite creates a Jekyll tree in a temp dir and changes into it.
func setupSite(t *testing.T, post string, withAssetDir bool) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	writeFile(t, filepath.Join("_posts", "post.md"), post)
	writeFile(t, filepath.Join("_posts", "assets", "cat.png"), "png")
	if withAssetDir {
		require.NoError(t, os.MkdirAll(filepath.Join("assets", "images", "segmentation_post"), 0o755))
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_Forward(t *testing.T) {
	setupSite(t, "Intro\n![a cat](../images/cat.png)\n", true)

	out, err := execute(t, "false", "--report", "run.yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("_posts", "post.md"))
	require.NoError(t, err)
	assert.Equal(t,
		"Intro\n<span class=\"image blog\"><img src=\"{{ \"./assets/images/segmentation_post/cat.png\" | relative_url }}\" alt=\"a cat\" /></span>\n",
		string(data))

	_, err = os.Stat(filepath.Join("assets", "images", "segmentation_post", "cat.png"))
	assert.NoError(t, err, "image should be in the asset directory")
	_, err = os.Stat(filepath.Join("_posts", "assets", "cat.png"))
	assert.True(t, os.IsNotExist(err), "image should have left the posts assets")

	assert.Contains(t, out, "rewritten: post.md (1 lines)")

	rep, err := os.ReadFile("run.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(rep), "images_moved: 1")
}

func TestRootCommand_LayoutFromEnv(t *testing.T) {
	setupSite(t, "![a cat](x/cat.png)\n", true)
	t.Setenv("IMAGE_COPIER_CONTAINER_CLASS", "figure")
	t.Setenv("IMAGE_COPIER_URL_FILTER", "absolute_url")

	_, err := execute(t, "false")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("_posts", "post.md"))
	require.NoError(t, err)
	assert.Equal(t,
		"<span class=\"figure\"><img src=\"{{ \"./assets/images/segmentation_post/cat.png\" | absolute_url }}\" alt=\"a cat\" /></span>\n",
		string(data))
}

func TestRootCommand_ReverseWithoutDestination(t *testing.T) {
	setupSite(t, "<img src=\"./assets/images/segmentation_post/cat.png\" alt=\"a cat\" />\n", false)
	require.NoError(t, os.RemoveAll(filepath.Join("_posts", "assets")))

	out, err := execute(t, "True")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("_posts", "post.md"))
	require.NoError(t, err)
	assert.Equal(t, "![a cat](./assets/cat.png)\n", string(data))
	assert.Contains(t, out, "not moved: cat.png line 1")
}

func TestRootCommand_MalformedFails(t *testing.T) {
	const post = "![broken reference\n"
	setupSite(t, post, true)

	_, err := execute(t, "false")
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrMalformedReference))

	data, err := os.ReadFile(filepath.Join("_posts", "post.md"))
	require.NoError(t, err)
	assert.Equal(t, post, string(data))
}

func TestRootCommand_RequiresDirection(t *testing.T) {
	setupSite(t, "text\n", true)

	_, err := execute(t)
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "image-copier dev\n", out)
}

func TestSetupLogging(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "INFO"} {
		assert.NoError(t, setupLogging(lvl), lvl)
	}
	assert.Error(t, setupLogging("loud"))
}
