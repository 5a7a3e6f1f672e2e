package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// session is the part of *mcp.ClientSession the REPL needs.
type session interface {
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
	ListTools(ctx context.Context, params *mcp.ListToolsParams) (*mcp.ListToolsResult, error)
}

var errExit = errors.New("exit")

// call is one parsed REPL line.
type call struct {
	tool string
	args map[string]any
	list bool
}

var usage = []struct{ cmd, desc string }{
	{"/tools", "List available tools"},
	{"/state", "Show UI flags"},
	{"/toggle <flag>", "Toggle a UI flag"},
	{"/set <flag> <bool>", "Set a UI flag"},
	{"/page [n]", "Show an order page (zero-based)"},
	{"/counts", "Count orders by status"},
	{"/exit", "Exit the client"},
	{"<status>", "Classify a status string"},
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")
	for _, u := range usage {
		fmt.Fprintf(w, "  %-20s - %s\n", u.cmd, u.desc)
	}
	fmt.Fprintln(w)
}

// parseLine turns one line of input into a tool call. Lines that do not
// start with a slash are status strings to classify.
func parseLine(input string) (call, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return call{}, fmt.Errorf("empty input")
	}
	if !strings.HasPrefix(parts[0], "/") {
		return call{tool: "classify_status", args: map[string]any{"status": input}}, nil
	}

	argc := len(parts) - 1
	switch parts[0] {
	case "/exit", "/quit":
		return call{}, errExit
	case "/tools":
		return call{list: true}, nil
	case "/state":
		return call{tool: "get_ui_state", args: map[string]any{}}, nil
	case "/counts":
		return call{tool: "count_orders_by_status", args: map[string]any{}}, nil
	case "/toggle":
		if argc != 1 {
			return call{}, fmt.Errorf("usage: /toggle <flag>")
		}
		return call{tool: "toggle_ui_flag", args: map[string]any{"flag": parts[1]}}, nil
	case "/set":
		if argc != 2 {
			return call{}, fmt.Errorf("usage: /set <flag> <bool>")
		}
		v, err := strconv.ParseBool(parts[2])
		if err != nil {
			return call{}, fmt.Errorf("bad value %q: %w", parts[2], err)
		}
		return call{tool: "set_ui_flag", args: map[string]any{"flag": parts[1], "value": v}}, nil
	case "/page":
		args := map[string]any{}
		if argc > 0 {
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				return call{}, fmt.Errorf("bad page %q: %w", parts[1], err)
			}
			args["page"] = n
		}
		return call{tool: "get_orders_page", args: args}, nil
	}
	return call{}, fmt.Errorf("unknown command %q", parts[0])
}

// runREPL reads commands from in until EOF or /exit.
func runREPL(ctx context.Context, s session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		c, err := parseLine(input)
		if errors.Is(err, errExit) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n\n", err)
			continue
		}

		if c.list {
			listTools(ctx, s, out)
			continue
		}
		result, err := s.CallTool(ctx, &mcp.CallToolParams{Name: c.tool, Arguments: c.args})
		if err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n\n", err)
			continue
		}
		printResult(out, result)
	}
}

func listTools(ctx context.Context, s session, out io.Writer) {
	res, err := s.ListTools(ctx, nil)
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n\n", err)
		return
	}
	fmt.Fprintln(out, "Available Tools:")
	for _, tool := range res.Tools {
		fmt.Fprintf(out, "  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Fprintln(out)
}

func printResult(out io.Writer, result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Fprint(out, "❌ Error: ")
	} else {
		fmt.Fprint(out, "✅ Result: ")
	}

	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Fprintln(out, prettyJSON(text.Text))
			continue
		}
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			fmt.Fprintf(out, "%+v\n", content)
			continue
		}
		fmt.Fprintln(out, string(data))
	}
	fmt.Fprintln(out)
}

// prettyJSON indents text when it is a JSON document and returns it
// unchanged otherwise.
func prettyJSON(text string) string {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return text
	}
	return string(out)
}
