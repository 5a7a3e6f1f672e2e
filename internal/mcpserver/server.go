package mcpserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"admindash/internal/orders"
	"admindash/internal/output"
	"admindash/internal/table"
	"admindash/internal/uistate"
)

// StatusCounter reports how many orders carry each status.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// Server exposes the flag store and the order table to MCP clients.
// Tool handlers may run on transport goroutines while the store and the
// view are single-threaded, so every handler holds mu.
type Server struct {
	mcpServer *mcp.Server
	logger    *slog.Logger

	mu          sync.Mutex
	store       *uistate.Store
	orders      *table.View[orders.Order]
	counter     StatusCounter
	unsubscribe func()
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance. counter may be nil, in which
// case count_orders_by_status is not registered.
func NewServer(cfg Config, store *uistate.Store, view *table.View[orders.Order], counter StatusCounter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Create MCP server with Implementation
	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		logger:    logger,
		store:     store,
		orders:    view,
		counter:   counter,
	}

	s.unsubscribe = store.Subscribe(func(snap uistate.Snapshot) {
		s.logger.Info("ui flags changed", "flags", snap.Map())
	})

	s.registerTools()
	return s
}

// FlagArgs names a flag.
type FlagArgs struct {
	Flag string `json:"flag" jsonschema:"flag name: left_panel_open, right_panel_open or dark_mode"`
}

// SetFlagArgs defines the input for set_ui_flag tool.
type SetFlagArgs struct {
	Flag  string `json:"flag" jsonschema:"flag name: left_panel_open, right_panel_open or dark_mode"`
	Value bool   `json:"value" jsonschema:"new value"`
}

// UIStateResult is the full flag state after a call.
type UIStateResult struct {
	Flags map[string]bool `json:"flags" jsonschema:"current value of every UI flag"`
}

// OrdersPageArgs defines the input for get_orders_page tool.
type OrdersPageArgs struct {
	Page *int `json:"page,omitempty" jsonschema:"zero-based page index, clamped to the valid range; omit to read the current page"`
}

// OrderRecord is one order with its status category.
type OrderRecord struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Project  string `json:"project"`
	Address  string `json:"address"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// OrdersPageResult is one page of the order table.
type OrdersPageResult struct {
	Page      int           `json:"page" jsonschema:"zero-based current page"`
	PageCount int           `json:"page_count"`
	Total     int           `json:"total"`
	HasPrev   bool          `json:"has_prev"`
	HasNext   bool          `json:"has_next"`
	Orders    []OrderRecord `json:"orders"`
}

// ClassifyArgs defines the input for classify_status tool.
type ClassifyArgs struct {
	Status string `json:"status" jsonschema:"order status text"`
}

// ClassifyResult names the category for a status.
type ClassifyResult struct {
	Category string `json:"category"`
	Known    bool   `json:"known" jsonschema:"false when the status maps to Unknown"`
}

// StatusCountsResult wraps per-status order counts.
type StatusCountsResult struct {
	Counts map[string]int `json:"counts"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_ui_state",
		Description: "Read the dashboard's UI flags: whether the left and right panels are open and whether dark mode is on.",
	}, s.handleGetUIState)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_ui_flag",
		Description: "Set one UI flag to an explicit value. Returns the full flag state afterwards.",
	}, s.handleSetUIFlag)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_ui_flag",
		Description: "Invert one UI flag. Returns the full flag state afterwards.",
	}, s.handleToggleUIFlag)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_orders_page",
		Description: "Return one page of the order list. Out-of-range pages are clamped, never rejected.",
	}, s.handleGetOrdersPage)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "classify_status",
		Description: "Map an order status string onto its display category. Matching is exact and case-sensitive against In Progress, Complete, Pending, Approved and Rejected; anything else is Unknown.",
	}, s.handleClassifyStatus)

	if s.counter != nil {
		mcp.AddTool(s.mcpServer, &mcp.Tool{
			Name:        "count_orders_by_status",
			Description: "Count stored orders per status string.",
		}, s.handleCountByStatus)
	}
}

func (s *Server) stateResult() UIStateResult {
	return UIStateResult{Flags: s.store.Snapshot().Map()}
}

func (s *Server) handleGetUIState(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, UIStateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, s.stateResult(), nil
}

func (s *Server) handleSetUIFlag(_ context.Context, _ *mcp.CallToolRequest, args SetFlagArgs) (*mcp.CallToolResult, UIStateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.store.Lookup(args.Flag)
	if err != nil {
		return nil, UIStateResult{}, err
	}
	if err := s.store.Set(f, args.Value); err != nil {
		return nil, UIStateResult{}, err
	}
	return nil, s.stateResult(), nil
}

func (s *Server) handleToggleUIFlag(_ context.Context, _ *mcp.CallToolRequest, args FlagArgs) (*mcp.CallToolResult, UIStateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.store.Lookup(args.Flag)
	if err != nil {
		return nil, UIStateResult{}, err
	}
	if err := s.store.Toggle(f); err != nil {
		return nil, UIStateResult{}, err
	}
	return nil, s.stateResult(), nil
}

func (s *Server) handleGetOrdersPage(_ context.Context, _ *mcp.CallToolRequest, args OrdersPageArgs) (*mcp.CallToolResult, OrdersPageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if args.Page != nil {
		s.orders.GoToPage(*args.Page)
	}
	page := output.BuildOrdersPage(s.orders)

	records := make([]OrderRecord, 0, len(page.Rows))
	for _, row := range page.Rows {
		o := row.Order
		records = append(records, OrderRecord{
			ID:       o.ID,
			User:     o.User,
			Project:  o.Project,
			Address:  o.Address,
			Date:     o.Date,
			Status:   o.Status,
			Category: row.Category.String(),
		})
	}

	return nil, OrdersPageResult{
		Page:      page.Page,
		PageCount: page.PageCount,
		Total:     page.Total,
		HasPrev:   page.HasPrev,
		HasNext:   page.HasNext,
		Orders:    records,
	}, nil
}

func (s *Server) handleClassifyStatus(_ context.Context, _ *mcp.CallToolRequest, args ClassifyArgs) (*mcp.CallToolResult, ClassifyResult, error) {
	c := table.ClassifyStatus(args.Status)
	return nil, ClassifyResult{Category: c.String(), Known: c != table.Unknown}, nil
}

func (s *Server) handleCountByStatus(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, StatusCountsResult, error) {
	counts, err := s.counter.CountByStatus(ctx)
	if err != nil {
		return nil, StatusCountsResult{}, fmt.Errorf("count orders: %w", err)
	}
	return nil, StatusCountsResult{Counts: counts}, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// Close detaches the server from the store.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
