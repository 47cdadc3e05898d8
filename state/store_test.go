package state

import "testing"

func TestSetValueForwardsFragmentUnchanged(t *testing.T) {
	s := NewStore()
	var got []Event
	s.Subscribe("w1", func(ev Event) { got = append(got, ev) })

	s.SetValue("w1", "#336699", Provenance{FromUI: true}, "frag-7")

	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if got[0].FragmentID != "frag-7" {
		t.Fatalf("fragment = %q, want frag-7", got[0].FragmentID)
	}
	v, ok := s.Get("w1")
	if !ok || v.Raw != "#336699" || !v.FromUI {
		t.Fatalf("stored value = %+v, want #336699 fromUI", v)
	}
}

func TestSubmitFormClearsMembersToDefaults(t *testing.T) {
	s := NewStore()
	id := s.RegisterWidget(Definition{ID: "picker", Kind: "color_picker", Default: "#000000", FormID: "form"})
	s.SetFormSubmitBehavior("form", true)

	var events []Event
	s.Subscribe(id, func(ev Event) { events = append(events, ev) })

	s.SetValue(id, "#e91e63", Provenance{FromUI: true}, "")
	s.SubmitForm("form", "")

	v, ok := s.Get(id)
	if !ok {
		t.Fatalf("value missing after submit")
	}
	if v.Raw != "#000000" {
		t.Fatalf("value after clear = %q, want #000000", v.Raw)
	}
	if !v.FromUI {
		t.Fatalf("reset write must carry FromUI true")
	}

	last := events[len(events)-1]
	if !last.Reset || last.Value != "#000000" || !last.FromUI {
		t.Fatalf("last event = %+v, want reset to default fromUI", last)
	}
}

func TestSubmitFormWithoutClearKeepsValues(t *testing.T) {
	s := NewStore()
	id := s.RegisterWidget(Definition{ID: "picker", Default: "#000000", FormID: "form"})
	s.SetFormSubmitBehavior("form", false)

	s.SetValue(id, "#e91e63", Provenance{FromUI: true}, "")
	s.SubmitForm("form", "")

	v, _ := s.Get(id)
	if v.Raw != "#e91e63" {
		t.Fatalf("value after submit = %q, want #e91e63", v.Raw)
	}
}

func TestSubmitFormCommitsBufferedValues(t *testing.T) {
	s := NewStore()
	a := s.RegisterWidget(Definition{ID: "a", Default: "", FormID: "form"})
	b := s.RegisterWidget(Definition{ID: "b", Default: "", FormID: "form"})

	var subs []Submission
	s.OnSubmit("form", func(sub Submission) { subs = append(subs, sub) })

	s.SetValue(a, "one", Provenance{FromUI: true}, "")
	s.SetValue(b, "two", Provenance{FromUI: true}, "")
	// Runtime seeds do not join the commit batch.
	s.SetValue(a, "seeded", Provenance{FromUI: false}, "")
	s.SubmitForm("form", "frag")

	if len(subs) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs))
	}
	sub := subs[0]
	if sub.FormID != "form" || sub.FragmentID != "frag" {
		t.Fatalf("submission meta = %+v", sub)
	}
	if sub.Committed["a"] != "one" || sub.Committed["b"] != "two" {
		t.Fatalf("committed = %#v", sub.Committed)
	}

	// Buffer drains on submit.
	s.SubmitForm("form", "")
	if len(subs) != 2 || len(subs[1].Committed) != 0 {
		t.Fatalf("second submission should commit nothing, got %#v", subs[1].Committed)
	}
}

func TestSubmitFormResetTargetsOnlyMembers(t *testing.T) {
	s := NewStore()
	member := s.RegisterWidget(Definition{ID: "in", Default: "d1", FormID: "form"})
	loose := s.RegisterWidget(Definition{ID: "out", Default: "d2"})
	s.SetFormSubmitBehavior("form", true)

	s.SetValue(member, "x", Provenance{FromUI: true}, "")
	s.SetValue(loose, "y", Provenance{FromUI: true}, "")
	s.SubmitForm("form", "")

	if v, _ := s.Get(member); v.Raw != "d1" {
		t.Fatalf("member = %q, want d1", v.Raw)
	}
	if v, _ := s.Get(loose); v.Raw != "y" {
		t.Fatalf("non-member = %q, want y untouched", v.Raw)
	}
}

func TestWatchSeesEveryWrite(t *testing.T) {
	s := NewStore()
	var seen []string
	s.Watch(func(ev Event) { seen = append(seen, ev.WidgetID+"="+ev.Value) })

	s.SetValue("w1", "a", Provenance{}, "")
	s.SetValue("w2", "b", Provenance{FromUI: true}, "")

	if len(seen) != 2 || seen[0] != "w1=a" || seen[1] != "w2=b" {
		t.Fatalf("watched = %#v", seen)
	}
}

func TestWidgetIDDeterministicWhenUnassigned(t *testing.T) {
	a := Definition{Kind: "color_picker", Label: "Pick", FormID: "form"}
	b := Definition{Kind: "color_picker", Label: "Pick", FormID: "form"}
	c := Definition{Kind: "color_picker", Label: "Other", FormID: "form"}

	if a.WidgetID() != b.WidgetID() {
		t.Fatalf("same definition must derive the same id")
	}
	if a.WidgetID() == c.WidgetID() {
		t.Fatalf("different labels must derive different ids")
	}
	if (Definition{ID: "explicit"}).WidgetID() != "explicit" {
		t.Fatalf("explicit id must win")
	}
}

func TestRegisterWidgetFormChangeDropsOldMembership(t *testing.T) {
	s := NewStore()
	id := s.RegisterWidget(Definition{ID: "picker", Default: "#000000", FormID: "form-a"})
	s.RegisterWidget(Definition{ID: "picker", Default: "#000000", FormID: "form-b"})
	s.SetFormSubmitBehavior("form-a", true)
	s.SetFormSubmitBehavior("form-b", true)

	if members := s.FormMembers("form-a"); len(members) != 0 {
		t.Fatalf("form-a members = %v, want none after the widget moved", members)
	}
	if members := s.FormMembers("form-b"); len(members) != 1 || members[0] != id {
		t.Fatalf("form-b members = %v, want [%s]", members, id)
	}

	s.SetValue(id, "#e91e63", Provenance{FromUI: true}, "")
	s.SubmitForm("form-a", "")
	if v, _ := s.Get(id); v.Raw != "#e91e63" {
		t.Fatalf("old form submit reset the moved widget: %q", v.Raw)
	}
	s.SubmitForm("form-b", "")
	if v, _ := s.Get(id); v.Raw != "#000000" {
		t.Fatalf("new form submit should clear the widget: %q", v.Raw)
	}
}

func TestRegisterWidgetWithoutFormLeavesForm(t *testing.T) {
	s := NewStore()
	s.RegisterWidget(Definition{ID: "picker", Default: "#000000", FormID: "form"})
	s.RegisterWidget(Definition{ID: "picker", Default: "#000000"})

	if members := s.FormMembers("form"); len(members) != 0 {
		t.Fatalf("members = %v, want none after the widget left the form", members)
	}
}
