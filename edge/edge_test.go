// SPDX-License-Identifier: Unlicense OR MIT

package edge

import (
	"testing"

	"gioui.org/io/system"
)

func TestDirectionalToFixed(t *testing.T) {
	tests := []struct {
		e   Directional
		dir system.TextDirection
		exp Fixed
	}{
		{DirTop, system.LTR, Top},
		{DirTop, system.RTL, Top},
		{Leading, system.LTR, Left},
		{Leading, system.RTL, Right},
		{Trailing, system.LTR, Right},
		{Trailing, system.RTL, Left},
		{DirBottom, system.LTR, Bottom},
		{DirBottom, system.RTL, Bottom},
	}
	for _, tc := range tests {
		if got := tc.e.Fixed(tc.dir); got != tc.exp {
			t.Errorf("%v.Fixed(%v): got %v, expected %v", tc.e, tc.dir, got, tc.exp)
		}
		// Resolution must round trip.
		if got := tc.exp.Directional(tc.dir); got != tc.e {
			t.Errorf("%v.Directional(%v): got %v, expected %v", tc.exp, tc.dir, got, tc.e)
		}
	}
}

func TestFixedIsIdentity(t *testing.T) {
	for _, e := range []Fixed{Top, Left, Right, Bottom} {
		for _, dir := range []system.TextDirection{system.LTR, system.RTL} {
			if got := e.Fixed(dir); got != e {
				t.Errorf("%v.Fixed(%v) = %v", e, dir, got)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Edge
		exp  bool
	}{
		{Top, DirTop, true},
		{Bottom, DirBottom, true},
		{Left, Left, true},
		{Leading, Leading, true},
		{Left, Leading, false},
		{Right, Trailing, false},
		{Top, Bottom, false},
		{Leading, Trailing, false},
	}
	for _, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.exp {
			t.Errorf("Equal(%v, %v): got %v, expected %v", tc.a, tc.b, got, tc.exp)
		}
		if got := Equal(tc.b, tc.a); got != tc.exp {
			t.Errorf("Equal(%v, %v): got %v, expected %v", tc.b, tc.a, got, tc.exp)
		}
	}
}

func TestIsHorizontal(t *testing.T) {
	for e, exp := range map[Edge]bool{
		Top: false, Left: true, Right: true, Bottom: false,
		DirTop: false, Leading: true, Trailing: true, DirBottom: false,
	} {
		if got := IsHorizontal(e); got != exp {
			t.Errorf("IsHorizontal(%v) = %v", e, got)
		}
	}
}

func TestSetResolve(t *testing.T) {
	edges := []Edge{Leading, Top}
	if got, exp := Resolve(edges, system.LTR), TopEdge|LeftEdge; got != exp {
		t.Errorf("LTR: got %v, expected %v", got, exp)
	}
	if got, exp := Resolve(edges, system.RTL), TopEdge|RightEdge; got != exp {
		t.Errorf("RTL: got %v, expected %v", got, exp)
	}
	if got := Resolve(nil, system.LTR); got != None {
		t.Errorf("empty: got %v", got)
	}
	if !BottomEdges.Contains(Bottom) || BottomEdges.Contains(Top) {
		t.Errorf("BottomEdges = %v", BottomEdges)
	}
	if got, exp := All.String(), "Top|Left|Right|Bottom"; got != exp {
		t.Errorf("All.String() = %q, expected %q", got, exp)
	}
}
