package feed

import (
	"context"
	"time"

	"github.com/velikanov/groupsync/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Shared test fixtures
// ─────────────────────────────────────────────────────────────────────────────

// testItem is the minimal collection item the engine tests run on.
type testItem struct {
	id     models.Identifier
	at     time.Time
	hidden bool
	note   string
}

// testVariant implements Variant[testItem]; newestFirst switches between
// the meetup-like and the thread-like ordering.
type testVariant struct {
	newestFirst bool
}

func (v testVariant) OrderingKeyOf(item testItem) OrderingKey {
	return OrderingKey{At: item.at, ID: item.id.Value()}
}

func (v testVariant) IdentifierOf(item testItem) models.Identifier { return item.id }

func (v testVariant) WithIdentifier(item testItem, id models.Identifier) testItem {
	item.id = id
	return item
}

func (v testVariant) NewestFirst() bool { return v.newestFirst }

// allowAll is a visibility policy that lets everything through.
type allowAll struct{}

func (allowAll) Apply(items []testItem, _ models.Role) []testItem { return items }
func (allowAll) DeniedUpstream(_ models.Role) bool                { return false }

// hideHidden drops items flagged hidden unless the role is moderator or
// above, and denies banned actors upstream.
type hideHidden struct{}

func (hideHidden) Apply(items []testItem, role models.Role) []testItem {
	kept := make([]testItem, 0, len(items))
	for _, item := range items {
		if item.hidden && !role.AtLeast(models.RoleModerator) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func (hideHidden) DeniedUpstream(role models.Role) bool { return role.Banned() }

// noopAnnotator passes items through untouched.
type noopAnnotator struct{}

func (noopAnnotator) Annotate(_ context.Context, items []testItem, _ string, _ time.Time) ([]testItem, error) {
	return items, nil
}

// stubSource serves pages from an in-memory row list kept in ascending
// key order, mimicking the store's keyset queries.
type stubSource struct {
	rows      []testItem // ascending by (at, id)
	role      models.Role
	roleErr   error
	pageErr   error
	pageCalls int
}

func (s *stubSource) FindRole(_ context.Context, _ string, _ CollectionKey) (models.Role, error) {
	if s.roleErr != nil {
		return models.RoleNone, s.roleErr
	}
	return s.role, nil
}

func (s *stubSource) FindPage(_ context.Context, q PageQuery) ([]testItem, error) {
	s.pageCalls++
	if s.pageErr != nil {
		return nil, s.pageErr
	}

	v := testVariant{}
	// Traversal descending mirrors the store rule: backward on an
	// ascending collection, forward on a newest-first one.
	descending := q.Direction == Backward

	var matched []testItem
	for _, row := range s.rows {
		key := v.OrderingKeyOf(row)
		switch {
		case q.After != nil && descending && key.Compare(*q.After) >= 0:
			continue
		case q.After != nil && !descending && key.Compare(*q.After) <= 0:
			continue
		case q.After == nil && descending && row.at.After(q.Now):
			continue
		case q.After == nil && !descending && !row.at.After(q.Now):
			continue
		}
		matched = append(matched, row)
	}

	if descending {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}
	if len(matched) > q.Limit+1 {
		matched = matched[:q.Limit+1]
	}
	return matched, nil
}

// stubProvider feeds a controller canned pages in call order.
type stubProvider struct {
	pages []Page[testItem]
	errs  []error
	calls []PageRequest
}

func (p *stubProvider) FetchPage(_ context.Context, req PageRequest) (Page[testItem], error) {
	p.calls = append(p.calls, req)
	idx := len(p.calls) - 1
	if idx < len(p.errs) && p.errs[idx] != nil {
		return Page[testItem]{}, p.errs[idx]
	}
	if idx >= len(p.pages) {
		return Page[testItem]{}, nil
	}
	return p.pages[idx], nil
}

// stubMutator confirms or rejects mutations with canned outcomes.
type stubMutator struct {
	confirmID  string
	createErr  error
	deleteErr  error
	created    []testItem
	deleted    []string
	serverNote string
}

func (m *stubMutator) Create(_ context.Context, item testItem) (testItem, error) {
	if m.createErr != nil {
		return testItem{}, m.createErr
	}
	item.id = models.ConfirmedID(m.confirmID)
	if m.serverNote != "" {
		item.note = m.serverNote
	}
	m.created = append(m.created, item)
	return item, nil
}

func (m *stubMutator) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// item is a shorthand constructor used across the engine tests.
func item(id string, at time.Time) testItem {
	return testItem{id: models.ConfirmedID(id), at: at}
}

// ids extracts identifier values in sequence order.
func ids(items []testItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id.Value())
	}
	return out
}

var baseTime = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
