// Package targets splits the sources requested on the command line into
// local sync databases and the AUR.
package targets

// AUR is the target name that selects the remote package index.
const AUR = "aur"

// Selection is the result of partitioning a target list.
type Selection struct {
	// Local holds the database names to hand to pacman, in request order.
	Local []string
	// Remote reports whether the AUR index was requested.
	Remote bool
}

// Partition classifies targets against the configured databases.
//
// An empty target list means every database plus the AUR. Otherwise the
// AUR is selected when any entry names it, and every other entry is kept
// for pacman as given: unknown names and duplicates are left for pacman to
// reject. Repeated AUR markers collapse into one.
func Partition(targets []string, databases []string) Selection {
	if len(targets) == 0 {
		return Selection{
			Local:  append([]string(nil), databases...),
			Remote: true,
		}
	}

	sel := Selection{Local: make([]string, 0, len(targets))}
	for _, t := range targets {
		if t == AUR {
			sel.Remote = true
			continue
		}
		sel.Local = append(sel.Local, t)
	}
	return sel
}

// HasLocal reports whether pacman has anything to list.
func (s Selection) HasLocal() bool {
	return len(s.Local) > 0
}
