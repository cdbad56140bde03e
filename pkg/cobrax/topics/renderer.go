package topics

// Renderer formats topic content for the terminal. format is the extension
// of the topic file, such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
