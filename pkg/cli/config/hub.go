package config

import "github.com/urfave/cli/v3"

// Hub holds Docker Hub configuration
type Hub struct {
	Username string
	Token    string
}

// Flags returns CLI flags for Docker Hub configuration
func (c *Hub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "docker-username",
			Usage:       "Docker Hub username (registry namespace)",
			Required:    true,
			Destination: &c.Username,
			Sources:     cli.EnvVars("HUBSYNC_DOCKER_USERNAME", "DOCKER_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "docker-token",
			Usage:       "Docker Hub personal access token",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("HUBSYNC_DOCKER_TOKEN", "DOCKERHUB_TOKEN"),
		},
	}
}
