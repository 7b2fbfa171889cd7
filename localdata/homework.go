package localdata

import "classwindow/models"

// LoadHomework reads the local homework list. Anything that is not a valid
// array comes back as an empty list.
func (s *Store) LoadHomework() []models.Homework {
	var list []models.Homework
	if !readJSONFile(s.homeworkPath(), &list) || list == nil {
		return []models.Homework{}
	}
	return list
}

func (s *Store) SaveHomework(list []models.Homework) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeJSONFile(s.homeworkPath(), list)
}

// AddHomework prepends the entry so the newest homework comes first. The
// cloud store appends instead; both layers sort before display, so the
// asymmetry is kept rather than papered over.
func (s *Store) AddHomework(hw models.Homework) []models.Homework {
	list := append([]models.Homework{hw}, s.LoadHomework()...)
	s.SaveHomework(list)
	return list
}

// DeleteHomework removes by positional index; out-of-range indices leave the
// list unchanged.
func (s *Store) DeleteHomework(index int) []models.Homework {
	list := s.LoadHomework()
	if index < 0 || index >= len(list) {
		return list
	}
	list = append(list[:index], list[index+1:]...)
	s.SaveHomework(list)
	return list
}

// UpdateHomework replaces the entry at index in place
func (s *Store) UpdateHomework(index int, hw models.Homework) []models.Homework {
	list := s.LoadHomework()
	if index < 0 || index >= len(list) {
		return list
	}
	list[index] = hw
	s.SaveHomework(list)
	return list
}
