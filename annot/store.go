package annot

// Store holds the views of one document, keyed by their stored view name
// (the right-hand side of ViewAliases).
type Store struct {
	views map[string]*View
	order []string
}

// NewStore creates an empty annotation store.
func NewStore() *Store {
	return &Store{views: make(map[string]*View)}
}

// AddView registers a view under its stored name, replacing any previous
// view of that name.
func (s *Store) AddView(v *View) {
	if _, exists := s.views[v.Name]; !exists {
		s.order = append(s.order, v.Name)
	}
	s.views[v.Name] = v
}

// View returns the view stored under the given name.
func (s *Store) View(name string) (*View, bool) {
	v, ok := s.views[name]
	return v, ok
}

// ViewByAlias resolves a public view alias ("learner",
// "target_hypothesis") to its stored view.
func (s *Store) ViewByAlias(alias string) (*View, bool) {
	stored, ok := ViewAliases[alias]
	if !ok {
		return nil, false
	}
	return s.View(stored)
}

// ViewNames returns the stored view names in insertion order.
func (s *Store) ViewNames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
