package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"targets.md":              {Data: []byte("# Targets\n\nDatabases and the AUR")},
		"configuration.txt":       {Data: []byte("Configuration keys")},
		"option-quiet.txt":        {Data: []byte("Quiet help")},
		"themes.txxt":             {Data: []byte("Themes\n======")},
		"ignore.json":             {Data: []byte("This should be ignored")},
		"advanced/passthrough.md": {Data: []byte("Passthrough help")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"targets", true, "# Targets\n\nDatabases and the AUR"},
			{"configuration", true, "Configuration keys"},
			{"passthrough", true, "Passthrough help"},
			{"themes", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.exists, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"themes"}, tm.ListTopics())
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"targets", "targets", true},
		{"option-quiet", "option-quiet", true},
		{"quiet", "option-quiet", true},
		{"--quiet", "option-quiet", true},
		{"-quiet", "option-quiet", true},
		{"-q", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"configuration", "option-quiet", "passthrough", "targets"}, tm.ListTopics())
}

func TestTopicManager_PrintList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var out bytes.Buffer
	tm.PrintList(&out, "testapp")

	assert.Contains(t, out.String(), "General topics:\n  configuration\n  passthrough\n  targets\n")
	assert.Contains(t, out.String(), "Option topics:\n  --quiet\n")
	assert.Contains(t, out.String(), "Use 'testapp help <topic>'")

	out.Reset()
	New(fstest.MapFS{}).PrintList(&out, "testapp")
	assert.Equal(t, "No help topics available.\n", out.String())
}

func newTestRoot(t *testing.T, out *bytes.Buffer) *cobra.Command {
	t.Helper()
	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	require.NoError(t, Initialize(rootCmd, testFS()))
	return rootCmd
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"topic", []string{"help", "configuration"}, "Configuration keys"},
		{"flag topic", []string{"help", "quiet"}, "Quiet help"},
		{"topic list", []string{"help", "topics"}, "Available help topics:"},
		{"command help", []string{"help", "list"}, "List something"},
		{"root help", []string{"help"}, "Test application"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd := newTestRoot(t, &out)
			rootCmd.SetArgs(tt.args)

			require.NoError(t, rootCmd.Execute())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
}

func TestGlamourRendererMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Targets\n\nThe **aur** target.", ".md")
	assert.Contains(t, out, "Targets")
	assert.Contains(t, out, "aur")
}
