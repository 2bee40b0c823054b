package state

import (
	"errors"
	"runtime"
	"testing"

	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/google/go-cmp/cmp"
)

func TestFilteredEntriesPrefixIgnoresCase(t *testing.T) {
	m := named("Alpha", "alps", "beta", "ALPINE")
	cases := map[string][]ID{
		"":     {0, 1, 2, 3},
		"al":   {0, 1, 3},
		"ALP":  {0, 1, 3},
		"alpi": {3},
		"lp":   {},
		"b":    {2},
	}
	for search, want := range cases {
		got := FilteredEntries(m.WithSearch(search)).IDs()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("search %q: unexpected ids (-want +got):\n%s", search, diff)
		}
	}
}

func TestSetSearchStringScenario(t *testing.T) {
	m := named("zeta", "omega", "abacus")
	m = mustApply(t, m, SetSearchString{Value: "ab"})
	if ids := FilteredEntries(m).IDs(); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("expected only entry 2, got %v", ids)
	}
	if m.Search() != "ab" {
		t.Fatalf("expected search persisted, got %q", m.Search())
	}
}

func TestSetSearchStringLeavesFocus(t *testing.T) {
	m := named("zeta", "omega", "abacus").WithFocus(Focus{Outer: 0, Inner: entry.At(1)})
	m = mustApply(t, m, SetSearchString{Value: "ab"})
	f, ok := m.Focus()
	if !ok || f.Outer != 0 || f.Inner != entry.At(1) {
		t.Fatalf("expected focus untouched by search, got %+v (%v)", f, ok)
	}
}

func TestFuzzyMatchMode(t *testing.T) {
	m := NewModel(NewEntries(entry.New("charlie"), entry.New("delta")), MatchFuzzy)
	if ids := FilteredEntries(m.WithSearch("chl")).IDs(); len(ids) != 1 || ids[0] != 0 {
		t.Fatalf("expected fuzzy match on charlie, got %v", ids)
	}
	if !Matches(MatchFuzzy, "anything", "") {
		t.Fatalf("expected empty search to match")
	}
}

func TestParseMatchMode(t *testing.T) {
	if mode, err := ParseMatchMode("Fuzzy"); err != nil || mode != MatchFuzzy {
		t.Fatalf("expected fuzzy, got %v (%v)", mode, err)
	}
	if mode, err := ParseMatchMode(""); err != nil || mode != MatchPrefix {
		t.Fatalf("expected prefix default, got %v (%v)", mode, err)
	}
	if _, err := ParseMatchMode("regex"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestMoveOuterFocusRoundTrip(t *testing.T) {
	m := named("a", "b", "c").WithFocus(Focus{Outer: 1, Inner: entry.At(0)})
	for _, start := range []ID{0, 1, 2} {
		from := m.WithFocus(Focus{Outer: start})
		back := mustApply(t, from, MoveOuterFocus{Dir: entry.Next}, MoveOuterFocus{Dir: entry.Prev})
		if diff := cmp.Diff(from.Snapshot(), back.Snapshot()); diff != "" {
			t.Fatalf("start %d: expected round trip (-want +got):\n%s", start, diff)
		}
	}
}

func TestMoveOuterFocusWithinFilteredSet(t *testing.T) {
	m := named("apple", "banana", "apricot", "avocado").WithSearch("a").WithFocus(Focus{Outer: 0, Inner: entry.At(1)})

	m = mustApply(t, m, MoveOuterFocus{Dir: entry.Next})
	if f, _ := m.Focus(); f.Outer != 2 || f.Inner != entry.At(1) {
		t.Fatalf("expected to skip filtered-out entry and keep inner point, got %+v", f)
	}
	m = mustApply(t, m, MoveOuterFocus{Dir: entry.Next}, MoveOuterFocus{Dir: entry.Next})
	if f, _ := m.Focus(); f.Outer != 0 {
		t.Fatalf("expected wrap to first visible entry, got %+v", f)
	}
	m = mustApply(t, m, MoveOuterFocus{Dir: entry.Prev})
	if f, _ := m.Focus(); f.Outer != 3 {
		t.Fatalf("expected wrap to last visible entry, got %+v", f)
	}
}

func TestMoveOuterFocusDropsStaleFocus(t *testing.T) {
	m := named("apple", "banana").WithFocus(Focus{Outer: 1}).WithSearch("ap")
	m = mustApply(t, m, MoveOuterFocus{Dir: entry.Next})
	if _, ok := m.Focus(); ok {
		t.Fatalf("expected focus dropped when focused entry is filtered out")
	}
}

func TestMoveOuterFocusEmpty(t *testing.T) {
	for _, m := range []Model{
		NewModel(NewEntries(), MatchPrefix),
		NewModel(NewEntries(), MatchPrefix).WithFocus(Focus{Outer: 4, Inner: entry.At(2)}),
		named("a").WithSearch("zzz").WithFocus(Focus{Outer: 0}),
	} {
		got := mustApply(t, m, MoveOuterFocus{Dir: entry.Next})
		if _, ok := got.Focus(); ok {
			t.Fatalf("expected no focus over an empty visible set")
		}
	}
}

func TestMoveOuterFocusFromNothing(t *testing.T) {
	m := named("a", "b", "c")
	if f, _ := mustApply(t, m, MoveOuterFocus{Dir: entry.Next}).Focus(); f.Outer != 0 {
		t.Fatalf("expected next to pick the first entry, got %+v", f)
	}
	if f, _ := mustApply(t, m, MoveOuterFocus{Dir: entry.Prev}).Focus(); f.Outer != 2 {
		t.Fatalf("expected prev to pick the last entry, got %+v", f)
	}
}

func TestMoveInnerFocus(t *testing.T) {
	m := named("a", "b")
	if got := mustApply(t, m, MoveInnerFocus{Dir: entry.Next}); got.FocusRef() != nil {
		t.Fatalf("expected no-op without outer focus")
	}

	m = m.WithFocus(Focus{Outer: 1})
	m = mustApply(t, m, MoveInnerFocus{Dir: entry.Next})
	if f, _ := m.Focus(); f.Outer != 1 || f.Inner != entry.At(0) {
		t.Fatalf("expected first row focused, got %+v", f)
	}
	m = mustApply(t, m, MoveInnerFocus{Dir: entry.Next}, MoveInnerFocus{Dir: entry.Next})
	if f, ok := m.Focus(); !ok || f.Inner.Valid {
		t.Fatalf("expected inner focus cleared past the last row, got %+v (%v)", f, ok)
	}
}

func TestMoveInnerFocusStaleOuterClearsEverything(t *testing.T) {
	m := named("a").WithFocus(Focus{Outer: 9, Inner: entry.At(1)})
	for _, dir := range []entry.Direction{entry.Prev, entry.Next} {
		got := mustApply(t, m, MoveInnerFocus{Dir: dir})
		if got.FocusRef() != nil {
			t.Fatalf("expected focus fully absent, got %+v", got.FocusRef())
		}
	}
}

func TestSetOuterFocusKeepsInnerPoint(t *testing.T) {
	m := named("a", "b", "c").WithFocus(Focus{Outer: 0, Inner: entry.At(1)})
	m = mustApply(t, m, SetOuterFocus{ID: 2})
	if f, _ := m.Focus(); f.Outer != 2 || f.Inner != entry.At(1) {
		t.Fatalf("expected inner point carried over, got %+v", f)
	}

	fresh := mustApply(t, named("a"), SetOuterFocus{ID: 0})
	if f, ok := fresh.Focus(); !ok || f.Outer != 0 || f.Inner.Valid {
		t.Fatalf("expected outer-only focus, got %+v (%v)", f, ok)
	}
}

func TestSetInnerFocus(t *testing.T) {
	if got := mustApply(t, named("a"), SetInnerFocus{Point: entry.At(1)}); got.FocusRef() != nil {
		t.Fatalf("expected no-op without outer focus")
	}
	got := mustApply(t, named("a", "b").WithFocus(Focus{Outer: 1}), SetInnerFocus{Point: entry.At(1)})
	if f, _ := got.Focus(); f.Outer != 1 || f.Inner != entry.At(1) {
		t.Fatalf("expected inner point set, got %+v", f)
	}
}

func TestEntryActionWithoutFocusIsNoOp(t *testing.T) {
	m := named("a", "b").WithFocus(Focus{Outer: 0})
	for _, a := range []entry.Action{entry.ToggleCollapse{}, entry.Bump{Dir: entry.Incr}, entry.Bump{Dir: entry.Decr}} {
		got := mustApply(t, m, EntryAction{Action: a})
		if diff := cmp.Diff(m.Snapshot(), got.Snapshot()); diff != "" {
			t.Fatalf("expected strict no-op (-want +got):\n%s", diff)
		}
	}
}

func TestEntryActionAppliesToNamedEntry(t *testing.T) {
	m := named("a", "b")
	m = mustApply(t, m, EntryAction{Focus: &Focus{Outer: 1}, Action: entry.Bump{Dir: entry.Incr}})
	if counterOf(m, 1) != 1 || counterOf(m, 0) != 0 {
		t.Fatalf("expected only entry 1 bumped, got %d/%d", counterOf(m, 0), counterOf(m, 1))
	}

	m = mustApply(t, m, EntryAction{Focus: &Focus{Outer: 0, Inner: entry.At(1)}, Action: entry.Bump{Dir: entry.Decr}})
	w, _ := m.Entries().Get(0)
	if got := w.(entry.Entry).Rows[1].Value; got != 1 {
		t.Fatalf("expected focused row decremented to 1, got %d", got)
	}

	before := m.Snapshot()
	m = mustApply(t, m, EntryAction{Focus: &Focus{Outer: 42}, Action: entry.ToggleCollapse{}})
	if diff := cmp.Diff(before, m.Snapshot()); diff != "" {
		t.Fatalf("expected stale entry action to be ignored (-want +got):\n%s", diff)
	}
}

func TestKickNOnEmptyMap(t *testing.T) {
	m := NewModel(NewEntries(), MatchPrefix)
	rng := &seqRand{}
	got, err := Apply(Env{Rand: rng}, KickN{N: 5}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Entries().Len() != 0 {
		t.Fatalf("expected entries to stay empty, got %d", got.Entries().Len())
	}
	if rng.calls != 0 {
		t.Fatalf("expected no draws against an empty map, got %d", rng.calls)
	}
}

func TestKickNPicksByPosition(t *testing.T) {
	m := named("a", "b", "c")
	// each kick draws a position, a counter delta, a row and a row delta
	rng := &seqRand{ints: []int{2, 10, 0, 1, 2, 0, 0, 1}}
	got, err := Apply(Env{Rand: rng}, KickN{N: 2}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counterOf(got, 2) != 0 {
		t.Fatalf("expected entry 2 kicked twice for a net 0, got %d", counterOf(got, 2))
	}
	if counterOf(got, 0) != 0 || counterOf(got, 1) != 0 {
		t.Fatalf("expected other entries untouched")
	}
	if rng.calls != 8 {
		t.Fatalf("expected 8 draws, got %d", rng.calls)
	}
}

func TestKickAllSingleCoinFlip(t *testing.T) {
	m := named("a", "b", "c")

	skip := &seqRand{floats: []float64{0.59}}
	got, _ := Apply(Env{Rand: skip}, KickAll{}, m)
	if diff := cmp.Diff(m.Snapshot(), got.Snapshot()); diff != "" {
		t.Fatalf("expected skipped batch (-want +got):\n%s", diff)
	}
	if skip.calls != 1 {
		t.Fatalf("expected a single draw when skipping, got %d", skip.calls)
	}

	kick := &seqRand{floats: []float64{0.6}, ints: []int{10, 0, 1, 10, 0, 1, 10, 0, 1}}
	got, _ = Apply(Env{Rand: kick}, KickAll{}, m)
	for _, id := range []ID{0, 1, 2} {
		if counterOf(got, id) != 5 {
			t.Fatalf("expected entry %d kicked, got counter %d", id, counterOf(got, id))
		}
	}
	if kick.calls != 10 {
		t.Fatalf("expected one coin flip plus three draws per entry, got %d", kick.calls)
	}
}

func TestRaise(t *testing.T) {
	cause := errors.New("got X")
	m := named("a")
	got, err := Apply(Env{}, Raise{Err: cause}, m)
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %T", err)
	}
	if !errors.Is(err, cause) || fatal.Runtime {
		t.Fatalf("expected explicit fatal error wrapping cause, got %v", err)
	}
	if got.Entries().Len() != 1 {
		t.Fatalf("expected model returned alongside error")
	}
	if _, err := Apply(Env{}, Raise{}, m); err == nil {
		t.Fatalf("expected error for nil cause")
	}
}

func TestRaiseRuntimePanicsWithRuntimeError(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(runtime.Error); !ok {
			t.Fatalf("expected runtime.Error panic, got %T %v", r, r)
		}
	}()
	_, _ = Apply(Env{}, RaiseRuntime{}, named("a"))
	t.Fatalf("expected panic")
}

func TestDumpStateCallsDumpAndKeepsModel(t *testing.T) {
	m := named("a", "b").WithFocus(Focus{Outer: 1}).WithSearch("b")
	var dumped []Snapshot
	got, err := Apply(Env{Dump: func(s Snapshot) { dumped = append(dumped, s) }}, DumpState{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dumped) != 1 {
		t.Fatalf("expected one dump, got %d", len(dumped))
	}
	if diff := cmp.Diff(m.Snapshot(), dumped[0]); diff != "" {
		t.Fatalf("unexpected dump (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(m.Snapshot(), got.Snapshot()); diff != "" {
		t.Fatalf("expected model unchanged (-want +got):\n%s", diff)
	}
	if _, err := Apply(Env{}, DumpState{}, m); err != nil {
		t.Fatalf("expected dump without sink to succeed, got %v", err)
	}
}

func TestNopAndExample(t *testing.T) {
	m := Example(3, MatchPrefix)
	if f, ok := m.Focus(); !ok || f.Outer != 0 || f.Inner.Valid {
		t.Fatalf("expected focus on the first entry, got %+v (%v)", f, ok)
	}
	if m.Search() != "" || m.Entries().Len() != 3 {
		t.Fatalf("unexpected bootstrap model %+v", m.Snapshot())
	}
	got := mustApply(t, m, Nop{})
	if diff := cmp.Diff(m.Snapshot(), got.Snapshot()); diff != "" {
		t.Fatalf("expected nop to change nothing (-want +got):\n%s", diff)
	}
	if _, ok := Example(0, MatchPrefix).Focus(); ok {
		t.Fatalf("expected empty bootstrap to have no focus")
	}
}

func TestStatusOf(t *testing.T) {
	m := named("a", "b").WithFocus(Focus{Outer: 1, Inner: entry.At(0)})
	if st := m.StatusOf(0); st.Focused {
		t.Fatalf("expected entry 0 unfocused")
	}
	if st := m.StatusOf(1); !st.Focused || st.Point != entry.At(0) {
		t.Fatalf("expected entry 1 focused at row 0, got %+v", st)
	}
}
