package board

import (
	"reflect"
	"testing"
)

func TestReorderIDs(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []string
	}{
		{name: "first to last", start: 0, end: 2, want: []string{"b", "c", "a"}},
		{name: "last to first", start: 2, end: 0, want: []string{"c", "a", "b"}},
		{name: "no-op", start: 1, end: 1, want: []string{"a", "b", "c"}},
		{name: "start out of range", start: 5, end: 0, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []string{"a", "b", "c"}
			got := ReorderIDs(in, tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReorderIDs = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(in, []string{"a", "b", "c"}) {
				t.Fatalf("input modified: %v", in)
			}
		})
	}
}

func TestMoveBetween(t *testing.T) {
	src := []string{"a", "b", "c"}
	dst := []string{"x", "y"}

	source, destination := MoveBetween(src, dst, 1, 1)
	if !reflect.DeepEqual(source, []string{"a", "c"}) {
		t.Fatalf("source = %v", source)
	}
	if !reflect.DeepEqual(destination, []string{"x", "b", "y"}) {
		t.Fatalf("destination = %v", destination)
	}
	if !reflect.DeepEqual(src, []string{"a", "b", "c"}) || !reflect.DeepEqual(dst, []string{"x", "y"}) {
		t.Fatalf("inputs modified: %v %v", src, dst)
	}
}

func TestInsertAtClamps(t *testing.T) {
	ids := []string{"a", "b"}
	if got := insertAt(ids, 10, "z"); !reflect.DeepEqual(got, []string{"a", "b", "z"}) {
		t.Fatalf("past end = %v", got)
	}
	if got := insertAt(ids, -1, "z"); !reflect.DeepEqual(got, []string{"z", "a", "b"}) {
		t.Fatalf("negative = %v", got)
	}
	if got := insertAt(nil, End, "z"); !reflect.DeepEqual(got, []string{"z"}) {
		t.Fatalf("empty = %v", got)
	}
}

func TestWithoutAllSharesUnchangedSlice(t *testing.T) {
	ids := []string{"a", "b"}
	got := withoutAll(ids, "z")
	if &got[0] != &ids[0] {
		t.Fatal("expected the original slice back when nothing matches")
	}
	if got := withoutAll([]string{"a", "z", "b", "z"}, "z"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("withoutAll = %v", got)
	}
}
