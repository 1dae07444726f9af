package manifest

// Merge combines the base dependencies with extra ones. An extra entry
// with the same name as a base dependency replaces the base pin; order is
// base order first, then new extras in the order given.
func Merge(extras []Dep) []Dep {
	merged := BaseDeps()
	index := make(map[string]int, len(merged))
	for i, dep := range merged {
		index[dep.Name] = i
	}

	for _, extra := range extras {
		if i, ok := index[extra.Name]; ok {
			merged[i] = extra
			continue
		}
		index[extra.Name] = len(merged)
		merged = append(merged, extra)
	}

	return merged
}
