package commands

import (
	"context"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

// DockerRuntime implements ImageRuntime over the docker engine API.
type DockerRuntime struct {
	client *client.Client
}

// NewDockerRuntime connects to the engine using the usual environment
// variables (DOCKER_HOST and friends)
func NewDockerRuntime() (*DockerRuntime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}

	return &DockerRuntime{client: cli}, nil
}

// ListImages returns every image layer the engine knows about
func (r *DockerRuntime) ListImages(ctx context.Context) ([]image.Summary, error) {
	return r.client.ImageList(ctx, image.ListOptions{All: true})
}

// RemoveImage removes one image. PruneChildren stays off: we issue deletions
// for children ourselves, deepest first
func (r *DockerRuntime) RemoveImage(ctx context.Context, id string, force bool) ([]image.DeleteResponse, error) {
	return r.client.ImageRemove(ctx, id, image.RemoveOptions{
		Force:         force,
		PruneChildren: false,
	})
}

// Close closes the underlying docker client
func (r *DockerRuntime) Close() error {
	return r.client.Close()
}
