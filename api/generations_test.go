package api

import (
	"strings"
	"testing"
)

func TestGenListZeroValue(t *testing.T) {
	var g GenList
	for _, topic := range AllTopics() {
		if g.At(topic) != 0 {
			t.Errorf("zero value should start at 0 for %s, got %d", topic, g.At(topic))
		}
		if !g.IsValid(topic) {
			t.Errorf("zero value should be valid for %s", topic)
		}
	}
	if !g.AnyValid() {
		t.Error("zero value should have valid topics")
	}
}

func TestGenListInvalids(t *testing.T) {
	g := Invalids()
	for _, topic := range AllTopics() {
		if g.IsValid(topic) {
			t.Errorf("Invalids() should not be valid for %s", topic)
		}
	}
	if g.AnyValid() {
		t.Error("Invalids() should have no valid topics")
	}
}

func TestGenListSetAt(t *testing.T) {
	var g GenList
	g.SetAt(TopicSigChld, 7)
	if g.At(TopicSigChld) != 7 {
		t.Errorf("At(sigchld) = %d, want 7", g.At(TopicSigChld))
	}
	if g.At(TopicSigHupInt) != 0 || g.At(TopicInternalExit) != 0 {
		t.Error("SetAt should not touch other topics")
	}
	arr := g.AsArray()
	if arr != [NumTopics]Generation{0, 7, 0} {
		t.Errorf("AsArray = %v, want [0 7 0]", arr)
	}
}

func TestGenListEquality(t *testing.T) {
	a := GenList{SigHupInt: 1, SigChld: 2, InternalExit: 3}
	b := a
	if a != b {
		t.Error("copies should compare equal")
	}
	b.SetAt(TopicInternalExit, 4)
	if a == b {
		t.Error("differing lists should not compare equal")
	}
}

func TestGenListSetMinFrom(t *testing.T) {
	a := GenList{SigHupInt: 5, SigChld: 2, InternalExit: 9}
	b := GenList{SigHupInt: 3, SigChld: 4, InternalExit: 9}
	a.SetMinFrom(TopicSigHupInt, b)
	if a.SigHupInt != 3 {
		t.Errorf("SetMinFrom should lower sighupint to 3, got %d", a.SigHupInt)
	}
	a.SetMinFrom(TopicSigChld, b)
	if a.SigChld != 2 {
		t.Errorf("SetMinFrom should keep the smaller sigchld 2, got %d", a.SigChld)
	}
	a.SetMinFrom(TopicInternalExit, b)
	if a.InternalExit != 9 {
		t.Errorf("SetMinFrom on equal values should not change, got %d", a.InternalExit)
	}
}

func TestGenListDescribe(t *testing.T) {
	g := GenList{SigHupInt: 1}
	g.SetAt(TopicSigChld, InvalidGeneration)
	s := g.Describe()
	if !strings.Contains(s, "sighupint:1") {
		t.Errorf("Describe missing sighupint value: %q", s)
	}
	if !strings.Contains(s, "sigchld:-") {
		t.Errorf("Describe should mark invalid sigchld: %q", s)
	}
}

func TestTopicString(t *testing.T) {
	names := map[Topic]string{
		TopicSigHupInt:    "sighupint",
		TopicSigChld:      "sigchld",
		TopicInternalExit: "internal_exit",
	}
	for topic, want := range names {
		if topic.String() != want {
			t.Errorf("Topic(%d).String() = %q, want %q", topic, topic.String(), want)
		}
	}
}

func TestUnknownTopicPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At with out-of-range topic should panic")
		}
	}()
	var g GenList
	g.At(Topic(NumTopics))
}
