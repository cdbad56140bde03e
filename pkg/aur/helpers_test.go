package aur

func collect(idx *Index) []string {
	var names []string
	for name := range idx.Names() {
		names = append(names, string(name))
	}
	return names
}
