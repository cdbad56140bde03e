package pacls

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pacls/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic-aware help command.
func initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}
	_ = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
}
