package Maps

import "testing"

func TestStrKey(t *testing.T) {
	if StrKey("Horse").Hash() != StrKey("Horse").Hash() {
		t.Error("hash not deterministic within a run")
	}
	if !StrKey("Horse").Equal(StrKey("Horse")) {
		t.Error("equal strings not Equal")
	}
	if StrKey("Horse").Equal(StrKey("Tiger")) {
		t.Error("distinct strings Equal")
	}
}

func TestIntKey(t *testing.T) {
	if IntKey(42).Hash() != IntKey(42).Hash() {
		t.Error("hash not deterministic within a run")
	}
	if !IntKey(42).Equal(IntKey(42)) || IntKey(42).Equal(IntKey(43)) {
		t.Error("wrong equality")
	}
	if HashInt(int8(42)) != HashInt(int8(42)) {
		t.Error("HashInt not deterministic within a run")
	}
}

func TestBytesKey(t *testing.T) {
	a, b := BytesKey("Horse"), BytesKey("Horse")
	if a.Hash() != b.Hash() {
		t.Error("equal contents hash differently")
	}
	if !a.Equal(b) {
		t.Error("equal contents not Equal")
	}
	if a.Equal(BytesKey("Tiger")) {
		t.Error("distinct contents Equal")
	}
}
