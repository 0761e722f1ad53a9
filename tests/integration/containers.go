//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

const depsComposeFile = "../../docker-compose.deps.yml"

// InitDockerCompose starts postgres, vault and the Pub/Sub emulator for the suite.
// With Reuse set, services already started with `docker compose -f docker-compose.deps.yml up`
// are used as they are and left running afterwards.
type InitDockerCompose struct {
	Reuse   string `config:"INTEGRATION_REUSE_DEPS" default:"false"`
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	reuse, err := strconv.ParseBool(i.Reuse)
	if err != nil {
		return ctx, fmt.Errorf("invalid INTEGRATION_REUSE_DEPS value %q: %w", i.Reuse, err)
	}
	if reuse {
		log.Printf("InitDockerCompose: reusing running services from %s", depsComposeFile)
		return ctx, nil
	}

	dc, err := compose.NewDockerCompose(depsComposeFile)
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	readiness := map[string]string{
		"postgres": "database system is ready to accept connections",
		"vault":    "Vault server started!",
		"pubsub":   "Server started",
	}
	for service, line := range readiness {
		dc.WaitForService(service, wait.NewLogStrategy(line).WithStartupTimeout(2*time.Minute))
	}

	return ctx, dc.Up(ctx, compose.Wait(true))
}

func (i *InitDockerCompose) Close() {
	if i.compose == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := i.compose.Down(ctx,
		compose.RemoveOrphans(true),
		compose.RemoveVolumes(true),
		compose.RemoveImages(compose.RemoveImagesLocal),
	)
	if err != nil {
		log.Printf("InitDockerCompose: failed to stop services: %v", err)
	}
}
