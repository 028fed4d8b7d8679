package memory

func (s *Store) noteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.notes)
}
