package oidpath

import (
	"errors"
	"slices"
	"testing"
)

func TestParsePaths_Default(t *testing.T) {
	spec, err := ParsePaths()
	if err != nil {
		t.Fatalf("ParsePaths() error: %v", err)
	}
	if got := spec.Strings(); !slices.Equal(got, []string{"_id"}) {
		t.Errorf("Strings() = %v, want [_id]", got)
	}
}

func TestParsePaths_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
	}{
		{"empty path", []string{""}},
		{"leading dot", []string{".a"}},
		{"trailing dot", []string{"a."}},
		{"double dot", []string{"a..b"}},
		{"one bad among good", []string{"_id", "base..type"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePaths(tt.paths...)
			if !errors.Is(err, ErrInvalidPathSpec) {
				t.Errorf("ParsePaths(%q) error = %v, want ErrInvalidPathSpec", tt.paths, err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error should be *ConfigError, got %T", err)
			}
		})
	}
}

func TestParsePaths_Duplicates(t *testing.T) {
	spec := MustParsePaths("b", "a", "b")
	if got := spec.Strings(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Strings() = %v, want [a b]", got)
	}
	if spec.Len() != 2 {
		t.Errorf("Len() = %d, want 2", spec.Len())
	}
}

func TestMustParsePaths_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePaths should panic on invalid path")
		}
	}()
	MustParsePaths("a..b")
}

func TestPathSpec_Match(t *testing.T) {
	spec := MustParsePaths("_id", "types.baseone._id", "types.basetwo.subtypes.base._id", "base.type")

	tests := []struct {
		key      string
		want     []string
		wantLeaf bool
		empty    bool
	}{
		{key: "_id", want: []string{""}, wantLeaf: true},
		{key: "types", want: []string{"baseone._id", "basetwo.subtypes.base._id"}},
		{key: "base", want: []string{"type"}},
		{key: "name", want: []string{}, empty: true},
		{key: "type", want: []string{}, empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			sub := spec.Match(tt.key)
			if got := sub.Strings(); !slices.Equal(got, tt.want) {
				t.Errorf("Match(%q).Strings() = %v, want %v", tt.key, got, tt.want)
			}
			if sub.IsLeaf() != tt.wantLeaf {
				t.Errorf("Match(%q).IsLeaf() = %v, want %v", tt.key, sub.IsLeaf(), tt.wantLeaf)
			}
			if sub.Empty() != tt.empty {
				t.Errorf("Match(%q).Empty() = %v, want %v", tt.key, sub.Empty(), tt.empty)
			}
		})
	}
}

func TestPathSpec_MatchLeafAndDeeper(t *testing.T) {
	sub := MustParsePaths("a", "a.b").Match("a")
	if !sub.IsLeaf() {
		t.Error("Match(a) should be a leaf")
	}
	if got := sub.Strings(); !slices.Equal(got, []string{"", "b"}) {
		t.Errorf("Strings() = %v, want [ b]", got)
	}
	if sub.Match("b").Empty() {
		t.Error("Match(a).Match(b) should not be empty")
	}
}

func TestPathSpec_MatchDoesNotMutate(t *testing.T) {
	spec := MustParsePaths("a.b.c")
	_ = spec.Match("a").Match("b")
	if got := spec.Strings(); !slices.Equal(got, []string{"a.b.c"}) {
		t.Errorf("receiver changed: %v", got)
	}
}

func TestPathSpec_Zero(t *testing.T) {
	var spec PathSpec
	if !spec.Empty() {
		t.Error("zero PathSpec should be empty")
	}
	if !spec.Match("_id").Empty() {
		t.Error("zero PathSpec should match nothing")
	}
}
