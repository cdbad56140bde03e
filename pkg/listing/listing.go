// Package listing renders AUR package names for the terminal.
package listing

import (
	"bufio"
	"io"
	"iter"

	"github.com/arthur-debert/pacls/pkg/style"
)

// Fixed pieces of a decorated line. The index carries no versions, so
// every entry shows the same placeholder.
const (
	RepoTag            = "aur "
	VersionPlaceholder = " unknown-version"
	InstalledMarker    = " [installed]"
)

// Lookup answers whether a package is installed locally.
type Lookup interface {
	Installed(name []byte) bool
}

// Renderer writes one line per package name.
type Renderer struct {
	// Quiet prints bare names only.
	Quiet bool
	// Decorators style the pieces of a decorated line.
	Decorators style.Decorators
	// Installed marks installed packages in decorated mode. May be nil.
	Installed Lookup
}

// Render writes every name in names to w and returns how many lines were
// produced. Write errors are dropped piece by piece: a failed write loses
// at most what was buffered at the time and the rest of the listing still
// goes out. w is buffered for the whole loop and flushed once on return.
func (r *Renderer) Render(w io.Writer, names iter.Seq[[]byte]) int {
	out := &pieceWriter{dst: w, buf: bufio.NewWriter(w)}
	defer out.flush()

	n := 0
	for name := range names {
		n++
		if r.Quiet {
			out.write(name)
			out.writeString("\n")
			continue
		}

		d := r.Decorators
		out.writeString(d.Repo(RepoTag))
		out.writeString(d.Package(string(name)))
		out.writeString(d.Version(VersionPlaceholder))
		if r.Installed != nil && r.Installed.Installed(name) {
			out.writeString(d.Installed(InstalledMarker))
		}
		out.writeString("\n")
	}
	return n
}

// pieceWriter buffers writes to dst. bufio.Writer keeps its first error
// forever, so the buffer is reset after a failure to let later pieces
// through.
type pieceWriter struct {
	dst io.Writer
	buf *bufio.Writer
}

func (p *pieceWriter) write(b []byte) {
	if _, err := p.buf.Write(b); err != nil {
		p.buf.Reset(p.dst)
	}
}

func (p *pieceWriter) writeString(s string) {
	if _, err := p.buf.WriteString(s); err != nil {
		p.buf.Reset(p.dst)
	}
}

func (p *pieceWriter) flush() {
	if err := p.buf.Flush(); err != nil {
		p.buf.Reset(p.dst)
	}
}
