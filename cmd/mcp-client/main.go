// Command mcp-client is an interactive shell for the admindash MCP server.
// It launches the server as a subprocess and maps REPL commands onto tool
// calls.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./admindash mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "admindash-client",
		Version: "1.0.0",
	}, nil)

	transport := &mcp.CommandTransport{Command: exec.Command(args[0], args[1:]...)}
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to admindash MCP server")
	printUsage(os.Stdout)

	if err := runREPL(ctx, session, os.Stdin, os.Stdout); err != nil {
		log.Printf("read input: %v", err)
	}
}
