package cli

import (
	"context"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driving"
)

// mockPatcher records requests and returns canned results.
type mockPatcher struct {
	requests   []driving.PatchRequest
	inspected  []string
	result     *driving.PatchResult
	inspection *driving.Inspection
	err        error
}

func (m *mockPatcher) Patch(_ context.Context, req driving.PatchRequest) (*driving.PatchResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driving.PatchResult{
		Locator:        "http://example.com/cdn/logo.png",
		DrawingNumber:  1,
		DrawingPath:    "xl/drawings/drawing1.xml",
		Worksheet:      domain.DefaultSheetPath,
		WorksheetWired: true,
		RelationshipID: "rId1",
	}, nil
}

func (m *mockPatcher) Inspect(_ context.Context, path string) (*driving.Inspection, error) {
	m.inspected = append(m.inspected, path)
	if m.err != nil {
		return nil, m.err
	}
	if m.inspection != nil {
		return m.inspection, nil
	}
	return &driving.Inspection{External: map[string][]domain.Relationship{}}, nil
}

// mockProfile is an in-memory driven.ProfileStore.
type mockProfile map[string]any

func (p mockProfile) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

func (p mockProfile) GetString(key string) string {
	s, _ := p[key].(string)
	return s
}

func (p mockProfile) GetBool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

func (p mockProfile) GetStringSlice(key string) []string {
	s, _ := p[key].([]string)
	return s
}

func (p mockProfile) Load() error  { return nil }
func (p mockProfile) Path() string { return "/mock/profile.toml" }

// setupTestServices wires a mock patcher and an optional profile. The
// returned catalog pointer receives what the factory was called with.
func setupTestServices(prof driven.ProfileStore) (*mockPatcher, *domain.Catalog, func()) {
	mock := &mockPatcher{}
	var got domain.Catalog

	var loader ProfileLoader
	if prof != nil {
		loader = func(string) (driven.ProfileStore, error) { return prof, nil }
	}
	Configure(func(c domain.Catalog) driving.Patcher {
		got = c
		return mock
	}, loader)

	return mock, &got, func() {
		Configure(nil, nil)
		patcher = nil
		profile = nil
		resetFlags()
		rootCmd.SetArgs(nil)
	}
}

// resetFlags restores flag values and clears their changed state between
// executions of the shared root command.
func resetFlags() {
	inputPath, outputPath, modeName, hostName = "", "", "", ""
	resourcePath, sheetName, configPath = "", "", ""
	useHTTPS, verbose = false, false

	for _, name := range []string{"input", "output", "mode", "host", "path", "https", "sheet"} {
		rootCmd.Flags().Lookup(name).Changed = false
	}
	for _, name := range []string{"verbose", "config"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}
}
