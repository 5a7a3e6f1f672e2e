package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admindash/internal/orders"
	"admindash/internal/table"
	"admindash/internal/uistate"
)

// MockCounter implements StatusCounter for testing
type MockCounter struct {
	Counts map[string]int
	Err    error
}

func (m *MockCounter) CountByStatus(ctx context.Context) (map[string]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Counts, nil
}

func newTestServer(t *testing.T, counter StatusCounter) (*Server, *uistate.Store) {
	t.Helper()
	store := uistate.New()
	view, err := table.New(orders.Seed(), 5)
	require.NoError(t, err)
	s := NewServer(Config{ServerName: "admindash-test", ServerVersion: "0.0.0"}, store, view, counter, nil)
	t.Cleanup(s.Close)
	return s, store
}

func TestHandleGetUIState(t *testing.T) {
	s, _ := newTestServer(t, nil)

	_, result, err := s.handleGetUIState(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"left_panel_open":  true,
		"right_panel_open": true,
		"dark_mode":        false,
	}, result.Flags)
}

func TestHandleSetUIFlag(t *testing.T) {
	s, store := newTestServer(t, nil)

	_, result, err := s.handleSetUIFlag(context.Background(), nil, SetFlagArgs{Flag: "dark_mode", Value: true})
	require.NoError(t, err)
	assert.True(t, result.Flags["dark_mode"])
	assert.True(t, store.Get(uistate.DarkMode))

	// Names are normalized before lookup
	_, result, err = s.handleSetUIFlag(context.Background(), nil, SetFlagArgs{Flag: "Left-Panel-Open", Value: false})
	require.NoError(t, err)
	assert.False(t, result.Flags["left_panel_open"])
}

func TestHandleSetUIFlag_Unknown(t *testing.T) {
	s, store := newTestServer(t, nil)
	before := store.Snapshot().Map()

	var notified int
	store.Subscribe(func(uistate.Snapshot) { notified++ })

	_, _, err := s.handleSetUIFlag(context.Background(), nil, SetFlagArgs{Flag: "compact", Value: true})
	assert.ErrorIs(t, err, uistate.ErrUnknownFlag)
	assert.Equal(t, before, store.Snapshot().Map())
	assert.Zero(t, notified)
}

func TestHandleToggleUIFlag(t *testing.T) {
	s, _ := newTestServer(t, nil)

	_, result, err := s.handleToggleUIFlag(context.Background(), nil, FlagArgs{Flag: "right_panel_open"})
	require.NoError(t, err)
	assert.False(t, result.Flags["right_panel_open"])

	_, result, err = s.handleToggleUIFlag(context.Background(), nil, FlagArgs{Flag: "right_panel_open"})
	require.NoError(t, err)
	assert.True(t, result.Flags["right_panel_open"])

	_, _, err = s.handleToggleUIFlag(context.Background(), nil, FlagArgs{Flag: ""})
	assert.ErrorIs(t, err, uistate.ErrUnknownFlag)
}

func TestHandleGetOrdersPage(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ctx := context.Background()

	// Omitted page reads the current one
	_, result, err := s.handleGetOrdersPage(ctx, nil, OrdersPageArgs{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Page)
	assert.Equal(t, 4, result.PageCount)
	assert.Equal(t, 20, result.Total)
	require.Len(t, result.Orders, 5)
	assert.Equal(t, "#CM9801", result.Orders[0].ID)
	assert.Equal(t, "In Progress", result.Orders[0].Category)

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantFirst string
	}{
		{"in range", 2, 2, "#CM9811"},
		{"negative clamps to first", -5, 0, "#CM9801"},
		{"past end clamps to last", 99, 3, "#CM9816"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := tt.page
			_, result, err := s.handleGetOrdersPage(ctx, nil, OrdersPageArgs{Page: &page})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, result.Page)
			assert.Equal(t, tt.wantFirst, result.Orders[0].ID)
		})
	}

	// The view remembers the last page
	_, result, err = s.handleGetOrdersPage(ctx, nil, OrdersPageArgs{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)
	assert.False(t, result.HasNext)
	assert.True(t, result.HasPrev)
}

func TestHandleClassifyStatus(t *testing.T) {
	s, _ := newTestServer(t, nil)

	tests := []struct {
		status   string
		category string
		known    bool
	}{
		{"Complete", "Complete", true},
		{"Pending", "Pending", true},
		{"  pending ", "Unknown", false},
		{"APPROVED", "Unknown", false},
		{"Shipped", "Unknown", false},
		{"", "Unknown", false},
	}
	for _, tt := range tests {
		_, result, err := s.handleClassifyStatus(context.Background(), nil, ClassifyArgs{Status: tt.status})
		require.NoError(t, err)
		assert.Equal(t, tt.category, result.Category, tt.status)
		assert.Equal(t, tt.known, result.Known, tt.status)
	}
}

func TestHandleCountByStatus(t *testing.T) {
	counter := &MockCounter{Counts: map[string]int{"Complete": 4}}
	s, _ := newTestServer(t, counter)

	_, result, err := s.handleCountByStatus(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Counts["Complete"])

	counter.Err = errors.New("database closed")
	_, _, err = s.handleCountByStatus(context.Background(), nil, struct{}{})
	assert.ErrorIs(t, err, counter.Err)
}

func TestServer_InMemorySession(t *testing.T) {
	s, store := newTestServer(t, &MockCounter{Counts: map[string]int{}})
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	list, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(list.Tools))
	for _, tool := range list.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get_ui_state", "set_ui_flag", "toggle_ui_flag",
		"get_orders_page", "classify_status", "count_orders_by_status",
	}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "toggle_ui_flag",
		Arguments: map[string]any{"flag": "dark_mode"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.True(t, store.Get(uistate.DarkMode))

	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	var state UIStateResult
	require.NoError(t, json.Unmarshal([]byte(text.Text), &state))
	assert.True(t, state.Flags["dark_mode"])

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "toggle_ui_flag",
		Arguments: map[string]any{"flag": "compact"},
	})
	if err == nil {
		assert.True(t, res.IsError)
	}
	assert.True(t, store.Get(uistate.DarkMode))
}

func TestServer_NoCounter(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	list, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	for _, tool := range list.Tools {
		assert.NotEqual(t, "count_orders_by_status", tool.Name)
	}
}
