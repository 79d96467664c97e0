package bitstore

import (
	"errors"
	"testing"
)

func TestFromBin(t *testing.T) {
	s := must(FromBin("0b10 10_0011"))
	if got := s.Bin(); got != "10100011" {
		t.Fatalf("Bin = %v, wanted 10100011", got)
	}
	if _, err := FromBin("0b102"); !errors.Is(err, ErrCreation) {
		t.Fatalf("bad bin = %v, wanted ErrCreation", err)
	}
	if got := must(FromBin("")).Len(); got != 0 {
		t.Fatalf("empty bin Len = %v, wanted 0", got)
	}
}

func TestFromHex(t *testing.T) {
	s := must(FromHex("0xDeadBeef"))
	if got := must(s.Hex()); got != "deadbeef" {
		t.Fatalf("Hex = %v, wanted deadbeef", got)
	}
	if got := s.Len(); got != 32 {
		t.Fatalf("Len = %v, wanted 32", got)
	}
	if _, err := FromHex("0xfg"); !errors.Is(err, ErrCreation) {
		t.Fatalf("bad hex = %v, wanted ErrCreation", err)
	}
}

func TestFromOct(t *testing.T) {
	s := must(FromOct("0o17"))
	if got := s.Bin(); got != "001111" {
		t.Fatalf("Bin = %v, wanted 001111", got)
	}
	if got := must(s.Oct()); got != "17" {
		t.Fatalf("Oct = %v, wanted 17", got)
	}
	if _, err := FromOct("0o18"); !errors.Is(err, ErrCreation) {
		t.Fatalf("bad oct = %v, wanted ErrCreation", err)
	}
}

func TestRenderLengthChecks(t *testing.T) {
	s := mustFromBits("10101")
	if _, err := s.Hex(); !errors.Is(err, ErrInterpret) {
		t.Fatalf("5-bit Hex = %v, wanted ErrInterpret", err)
	}
	if _, err := s.Oct(); !errors.Is(err, ErrInterpret) {
		t.Fatalf("5-bit Oct = %v, wanted ErrInterpret", err)
	}
	if got := s.Bin(); got != "10101" {
		t.Fatalf("Bin = %v, wanted 10101", got)
	}
}

func TestFromLiteral(t *testing.T) {
	a := must(FromLiteral("0x_fF"))
	b := must(FromBin("11111111"))
	if !a.Equal(b) {
		t.Fatalf("0x_fF = %v, wanted 11111111", a.Bin())
	}
	if got := must(FromLiteral("0B1010")).Bin(); got != "1010" {
		t.Fatalf("0B1010 = %v, wanted 1010", got)
	}
	if got := must(FromLiteral("0O7")).Bin(); got != "111" {
		t.Fatalf("0O7 = %v, wanted 111", got)
	}
	if _, err := FromLiteral("1010"); !errors.Is(err, ErrCreation) {
		t.Fatalf("prefixless literal = %v, wanted ErrCreation", err)
	}
	if _, err := FromLiteral(""); !errors.Is(err, ErrCreation) {
		t.Fatalf("empty literal = %v, wanted ErrCreation", err)
	}
	if _, err := FromLiteral("0xgg"); !errors.Is(err, ErrCreation) {
		t.Fatalf("bad literal = %v, wanted ErrCreation", err)
	}
}

func TestFromLiteralIsFrozenAndCached(t *testing.T) {
	a := must(FromLiteral("0b110011"))
	if !a.Immutable() {
		t.Fatalf("literal store is not frozen")
	}
	if err := a.Set(0, false); !errors.Is(err, ErrImmutable) {
		t.Fatalf("Set on literal = %v, wanted ErrImmutable", err)
	}
	b := must(FromLiteral("0b110011"))
	if a != b {
		t.Fatalf("repeated literal did not come from the cache")
	}
}

func TestLiteralCacheEvicts(t *testing.T) {
	c := newLiteralCache(2)
	c.put("a", mustFromBits("1"))
	c.put("b", mustFromBits("0"))
	c.put("c", mustFromBits("11"))
	if got := c.len(); got != 2 {
		t.Fatalf("len = %v, wanted 2", got)
	}
	if _, ok := c.get("a"); ok {
		t.Fatalf("oldest entry survived eviction")
	}
	if _, ok := c.get("c"); !ok {
		t.Fatalf("newest entry missing")
	}
}

func TestLiteralCacheLRUOrder(t *testing.T) {
	c := newLiteralCache(2)
	c.put("a", mustFromBits("1"))
	c.put("b", mustFromBits("0"))
	if _, ok := c.get("a"); !ok {
		t.Fatal("a missing")
	}
	c.put("c", mustFromBits("11"))
	if _, ok := c.get("a"); !ok {
		t.Fatalf("recently used entry evicted")
	}
	if _, ok := c.get("b"); ok {
		t.Fatalf("least recently used entry survived")
	}
}
