package voxel

import "testing"

func TestBoolVisibility(t *testing.T) {
	if got := EmptyVoxel.Visibility(); got != Empty {
		t.Errorf("EMPTY visibility = %v, want Empty", got)
	}
	if got := FullVoxel.Visibility(); got != Opaque {
		t.Errorf("FULL visibility = %v, want Opaque", got)
	}
	if Empty >= Opaque {
		t.Error("expected Empty to order before Opaque")
	}
}

func TestBoolMergeValue(t *testing.T) {
	if FullVoxel.MergeValue() != FullVoxel.MergeValue() {
		t.Error("FULL voxels must share a merge value")
	}
	if FullVoxel.MergeValue() == EmptyVoxel.MergeValue() {
		t.Error("FULL and EMPTY must not share a merge value")
	}
}

func TestBoolImplementsMergeVoxel(t *testing.T) {
	var _ MergeVoxel[Bool] = FullVoxel
	if FullVoxel.String() != "FULL" || EmptyVoxel.String() != "EMPTY" {
		t.Errorf("unexpected String output: %s / %s", FullVoxel, EmptyVoxel)
	}
}
