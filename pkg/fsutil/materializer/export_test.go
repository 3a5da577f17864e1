package materializer

// SetChown swaps the ownership function for tests.
func (m *Materializer) SetChown(chown func(path, username string) error) {
	m.chown = chown
}
