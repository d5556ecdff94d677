// Package dependency wires core finchline services using go.uber.org/dig.
package dependency

import (
	"go.uber.org/dig"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/finchline/finchline/internal/config"
	"github.com/finchline/finchline/internal/server"
	"github.com/finchline/finchline/internal/tools"
	"github.com/finchline/finchline/internal/xapi"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client   *xapi.Client
	registry *tools.Registry
	srv      *mcpserver.MCPServer
}

func (c *Container) Client() *xapi.Client         { return c.client }
func (c *Container) Registry() *tools.Registry    { return c.registry }
func (c *Container) Server() *mcpserver.MCPServer { return c.srv }

// New builds and wires all services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(server.New); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *xapi.Client,
		registry *tools.Registry,
		srv *mcpserver.MCPServer,
	) {
		result = &Container{
			client:   client,
			registry: registry,
			srv:      srv,
		}
	})
	return result, err
}

func newClient(cfg *config.Config) *xapi.Client {
	return xapi.New(cfg.Credentials())
}

func newRegistry(cfg *config.Config, client *xapi.Client) *tools.Registry {
	return tools.NewRegistry(client, tools.Options{RosterPageSize: cfg.RosterPageSize})
}
