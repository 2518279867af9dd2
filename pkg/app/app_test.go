package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MarcelRaschke/lazyrmi/pkg/commands"
	"github.com/MarcelRaschke/lazyrmi/pkg/planner"
	"github.com/docker/docker/api/types/image"
	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

func newTestApp(runtime commands.ImageRuntime, input string) (*App, *bytes.Buffer) {
	command := commands.NewDummyDockerCommand(runtime)
	out := &bytes.Buffer{}

	return &App{
		Config:        command.Config,
		Log:           commands.NewDummyLog(),
		DockerCommand: command,
		Tr:            command.Tr,
		Out:           out,
		In:            strings.NewReader(input),
	}, out
}

func chainRuntime() *commands.MockRuntime {
	return &commands.MockRuntime{
		ListImagesFunc: func(ctx context.Context) ([]image.Summary, error) {
			return []image.Summary{
				{ID: "sha256:aaa", RepoTags: []string{"app:latest"}, Size: 100},
				{ID: "sha256:bbb", ParentID: "sha256:aaa", RepoTags: []string{planner.NoneTag}, Size: 50},
				{ID: "sha256:ccc", ParentID: "sha256:bbb", RepoTags: []string{planner.NoneTag}, Size: 25},
			}, nil
		},
		RemoveImageFunc: func(ctx context.Context, id string, force bool) ([]image.DeleteResponse, error) {
			return []image.DeleteResponse{{Deleted: id}}, nil
		},
	}
}

func TestRun(t *testing.T) {
	t.Run("errors without a selection", func(t *testing.T) {
		app, _ := newTestApp(chainRuntime(), "")

		err := app.Run(RunOptions{})
		assert.Error(t, err)
	})

	t.Run("dry run shows the order but removes nothing", func(t *testing.T) {
		runtime := chainRuntime()
		app, out := newTestApp(runtime, "")

		err := app.Run(RunOptions{Refs: []string{"app:latest"}, DryRun: true})
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "app:latest")
		assert.Empty(t, runtime.RemovedIDs)
	})

	t.Run("removes deepest layers first after confirmation", func(t *testing.T) {
		runtime := chainRuntime()
		app, out := newTestApp(runtime, "y\n")

		err := app.Run(RunOptions{Refs: []string{"app:latest"}})
		assert.NoError(t, err)
		// the untagged middle layer goes implicitly when its child does
		assert.Equal(t, []string{"sha256:ccc", "sha256:aaa"}, runtime.RemovedIDs)
		assert.Contains(t, out.String(), "2")
	})

	t.Run("declining the prompt aborts", func(t *testing.T) {
		runtime := chainRuntime()
		app, out := newTestApp(runtime, "n\n")

		err := app.Run(RunOptions{Refs: []string{"app:latest"}})
		assert.NoError(t, err)
		assert.Empty(t, runtime.RemovedIDs)
		assert.Contains(t, out.String(), app.Tr.Aborted)
	})

	t.Run("skip confirmation flag bypasses the prompt", func(t *testing.T) {
		runtime := chainRuntime()
		app, _ := newTestApp(runtime, "")

		err := app.Run(RunOptions{Refs: []string{"app:latest"}, SkipConfirmation: true})
		assert.NoError(t, err)
		assert.NotEmpty(t, runtime.RemovedIDs)
	})

	t.Run("dangling selection with nothing dangling", func(t *testing.T) {
		runtime := &commands.MockRuntime{
			ListImagesFunc: func(ctx context.Context) ([]image.Summary, error) {
				return []image.Summary{
					{ID: "sha256:aaa", RepoTags: []string{"app:latest"}},
				}, nil
			},
		}
		app, out := newTestApp(runtime, "")

		err := app.Run(RunOptions{Dangling: true})
		assert.NoError(t, err)
		assert.Contains(t, out.String(), app.Tr.NoDanglingImages)
	})

	t.Run("dangling selection removes every dangling image", func(t *testing.T) {
		runtime := chainRuntime()
		app, _ := newTestApp(runtime, "")

		err := app.Run(RunOptions{Dangling: true, SkipConfirmation: true})
		assert.NoError(t, err)
		// bbb is an untagged interior layer: removing ccc removes it too
		assert.Equal(t, []string{"sha256:ccc"}, runtime.RemovedIDs)
	})

	t.Run("unknown reference surfaces", func(t *testing.T) {
		app, _ := newTestApp(chainRuntime(), "")

		err := app.Run(RunOptions{Refs: []string{"nope"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})
}

func TestKnownError(t *testing.T) {
	app, _ := newTestApp(chainRuntime(), "")

	t.Run("socket permission problems get a friendly message", func(t *testing.T) {
		message, known := app.KnownError(errors.New("Got permission denied while trying to connect to the Docker daemon socket at unix:///var/run/docker.sock"))
		assert.True(t, known)
		assert.Equal(t, app.Tr.CannotAccessDockerSocketError, message)
	})

	t.Run("anything else is not known", func(t *testing.T) {
		_, known := app.KnownError(errors.New("some novel explosion"))
		assert.False(t, known)
	})
}
