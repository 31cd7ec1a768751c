package profile

// Store exposes page content for HTTP handlers.
type Store interface {
	Profile() Profile
	Sections() []Section
	FindSection(id string) (Section, bool)
	Links() []Link
}

// MemoryStore implements Store over the seeded profile.
type MemoryStore struct {
	profile Profile
}

// NewMemoryStore returns a MemoryStore holding p.
func NewMemoryStore(p Profile) *MemoryStore {
	return &MemoryStore{profile: p}
}

// Profile returns the full page content.
func (s *MemoryStore) Profile() Profile {
	p := s.profile
	p.Sections = s.Sections()
	p.Links = s.Links()
	p.Timeline = append([]TimelineItem(nil), s.profile.Timeline...)
	p.Skills = append([]string(nil), s.profile.Skills...)
	p.Manifesto = append([]ManifestoItem(nil), s.profile.Manifesto...)
	p.Vision = append([]VisionNode(nil), s.profile.Vision...)
	p.Thoughts = make([]Thought, len(s.profile.Thoughts))
	for i, t := range s.profile.Thoughts {
		t.Tags = append([]string(nil), t.Tags...)
		p.Thoughts[i] = t
	}
	p.Collaborations = append([]Collaboration(nil), s.profile.Collaborations...)
	return p
}

// Sections returns the anchored sections in page order.
func (s *MemoryStore) Sections() []Section {
	return append([]Section(nil), s.profile.Sections...)
}

// FindSection looks up a section by anchor id.
func (s *MemoryStore) FindSection(id string) (Section, bool) {
	for _, item := range s.profile.Sections {
		if item.ID == id {
			return item, true
		}
	}
	return Section{}, false
}

// Links returns the social links.
func (s *MemoryStore) Links() []Link {
	return append([]Link(nil), s.profile.Links...)
}
