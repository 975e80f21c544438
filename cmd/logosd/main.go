// Command logosd runs the language service as a Content-Length framed
// JSON-RPC daemon over stdio.
package main

import (
	"context"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/logos-lang/logos-go/internal/dispatch"
	"github.com/logos-lang/logos-go/internal/rpc"
)

var log = commonlog.GetLoggerf("logos.daemon")

func main() {
	commonlog.Configure(verbosityFromEnv(), nil)

	d := dispatch.New()
	log.Info("logos daemon starting, speaking JSON-RPC over stdio")

	if err := rpc.Serve(context.Background(), stdio{}, d); err != nil {
		log.Errorf("daemon exited with error: %v", err)
		os.Exit(1)
	}
}

// verbosityFromEnv translates LOGOS_LOG_LEVEL (info|debug|warn|error,
// default info) into the verbosity count commonlog.Configure expects.
func verbosityFromEnv() int {
	switch os.Getenv("LOGOS_LOG_LEVEL") {
	case "error":
		return 0
	case "warn":
		return 1
	case "debug":
		return 3
	default: // "info" or unset
		return 2
	}
}

// stdio adapts os.Stdin/os.Stdout into the single io.ReadWriteCloser
// jsonrpc2.NewBufferedStream expects.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdio) Close() error {
	_ = os.Stdin.Close()
	return os.Stdout.Close()
}
