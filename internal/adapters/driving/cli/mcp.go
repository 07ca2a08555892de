package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the directory to AI assistants",
	Long:  `Expose the directory over the Model Context Protocol (MCP).`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start an MCP server backed by the loaded dataset.

Tools:
  search_organizations  search text plus type, help type, status and tag filters
  get_organization      every field of one organization
  directory_summary     total, active and financial aid figures
  list_facets           values available to each filter

Resources:
  reliefdir://organizations        the full list
  reliefdir://facets               the filter values
  reliefdir://organizations/{id}   one organization

Without --port the server speaks JSON-RPC on stdin/stdout, which is what
desktop assistants launch. With --port it serves streamable HTTP instead,
plus a /healthz endpoint.

Examples:
  reliefdir --dataset organizations.json mcp serve
  reliefdir mcp serve --port 8080
  reliefdir mcp serve --port 8080 --host 0.0.0.0

Assistant configuration:
  {
    "mcpServers": {
      "reliefdir": {
        "command": "/path/to/reliefdir",
        "args": ["--dataset", "/path/to/organizations.json", "mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "127.0.0.1", "HTTP listen address")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{Directory: directoryService})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if mcpPort <= 0 {
		return server.Run(ctx)
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
