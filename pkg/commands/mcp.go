package commands

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/mcp"
)

const defaultMCPAddr = "127.0.0.1:8080"

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		addr      string
		path      string
		tlsCert   string
		tlsKey    string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Serve the journal over the Model Context Protocol. Agents can add and
remove entries, list them with filters and read mood counts and frequencies.
Writes made by other mindtrackr processes are picked up while serving.`,
		Example: `
mindtrackr mcp
mindtrackr mcp --transport stdio
mindtrackr mcp --addr :0 --path /journal
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner := mcp.Runner{
				Logger:         logger,
				Name:           "mindtrackr",
				Version:        version,
				HTTPServerCert: strings.TrimSpace(tlsCert),
				HTTPServerKey:  strings.TrimSpace(tlsKey),
			}

			switch mcp.Transport(strings.ToLower(strings.TrimSpace(transport))) {
			case "", mcp.TransportHTTP:
				host, _, err := net.SplitHostPort(addr)
				if err != nil {
					return output.HandleError(fmt.Errorf("invalid --addr %q: %w", addr, err))
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.HTTPEndpointPath = endpointPath(path)
				runner.OnHTTPListening = func(a net.Addr) {
					u := listenURL(a, host, runner.HTTPEndpointPath, runner.HTTPServerCert != "" && runner.HTTPServerKey != "")
					logger.Info("mcp server listening", zap.String("url", u))
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", u)
				}
			case mcp.TransportStdio:
				runner.Transport = mcp.TransportStdio
			default:
				return output.HandleError(fmt.Errorf("unsupported transport %q (expected http or stdio)", transport))
			}

			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				runner.Journal = j
				return runner.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "Transport to serve on: http or stdio.")
	cmd.Flags().StringVar(&addr, "addr", defaultMCPAddr, "host:port for the HTTP transport, port 0 picks a free one.")
	cmd.Flags().StringVar(&path, "path", "/mcp", "HTTP endpoint path.")
	cmd.Flags().StringVar(&tlsCert, "tls-cert", "", "TLS certificate file, serves HTTPS together with --tls-key.")
	cmd.Flags().StringVar(&tlsKey, "tls-key", "", "TLS private key file.")
	_ = cmd.RegisterFlagCompletionFunc("transport", cobra.FixedCompletions(
		[]string{string(mcp.TransportHTTP), string(mcp.TransportStdio)}, cobra.ShellCompDirectiveNoFileComp))

	topLevel.AddCommand(cmd)
}

func endpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// listenURL describes where clients reach the server. Wildcard hosts are
// shown as loopback.
func listenURL(a net.Addr, host, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + a.String() + path
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + path
}
