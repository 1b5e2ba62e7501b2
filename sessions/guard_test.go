package sessions

import "testing"

func TestGenerationGuard(t *testing.T) {
	var g generationGuard

	first := g.next()
	if !g.still(first) {
		t.Fatal("fresh token should be live")
	}

	second := g.next()
	if g.still(first) {
		t.Fatal("superseded token still considered live")
	}
	if !g.still(second) {
		t.Fatal("newest token should be live")
	}
}

func TestRecordingGuard(t *testing.T) {
	var g RecordingGuard

	if !g.TryAcquire() {
		t.Fatal("first acquire should succeed")
	}
	if g.TryAcquire() {
		t.Fatal("second acquire should fail while held")
	}
	g.Release()
	if !g.TryAcquire() {
		t.Fatal("acquire after release should succeed")
	}
	g.Release()
}
