package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learngrid/learngrid/internal/config"
	"github.com/learngrid/learngrid/internal/selfupdate"
)

func versionFlags(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("LEARNGRID_CONFIG", "")
	t.Setenv("LEARNGRID_RELEASE_REPO", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("repo", "", "")
	return cmd
}

func TestReleaseRepo_Default(t *testing.T) {
	cmd := versionFlags(t)

	repo, err := releaseRepo(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultReleaseRepo, repo)
}

func TestReleaseRepo_EnvAndFlag(t *testing.T) {
	cmd := versionFlags(t)
	t.Setenv("LEARNGRID_RELEASE_REPO", "fork/lg")

	repo, err := releaseRepo(cmd)
	require.NoError(t, err)
	assert.Equal(t, "fork/lg", repo)

	require.NoError(t, cmd.Flags().Set("repo", "acme/lg"))
	repo, err = releaseRepo(cmd)
	require.NoError(t, err)
	assert.Equal(t, "acme/lg", repo)
}

func TestCheckForUpdate_UsesConfiguredRepo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/acme/lg/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v0.3.0","html_url":"https://example.com/acme/lg/v0.3.0"}`))
	}))
	defer server.Close()

	owner, name, err := selfupdate.ParseRepo("acme/lg")
	require.NoError(t, err)
	checker := selfupdate.NewChecker(selfupdate.WithBaseURL(server.URL), selfupdate.WithRepo(owner, name))

	var out bytes.Buffer
	require.NoError(t, checkForUpdate(context.Background(), checker, "v0.2.0", &out))
	assert.Contains(t, out.String(), "A newer version is available: v0.3.0 (you have v0.2.0)")
	assert.Contains(t, out.String(), "https://example.com/acme/lg/v0.3.0")
}

func TestCheckForUpdate_DevBuild(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, checkForUpdate(context.Background(), selfupdate.NewChecker(), "(devel)", &out))
	assert.Contains(t, out.String(), "Development build")
}
