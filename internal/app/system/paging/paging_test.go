package paging_test

import (
	"testing"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/paging"
)

func TestSkip(t *testing.T) {
	if got := paging.Skip(1); got != 0 {
		t.Errorf("Skip(1) = %d, want 0", got)
	}
	if got := paging.Skip(3); got != int64(2*paging.PageSize) {
		t.Errorf("Skip(3) = %d, want %d", got, 2*paging.PageSize)
	}
	if got := paging.Skip(0); got != 0 {
		t.Errorf("Skip(0) = %d, want 0", got)
	}
	if got := paging.Skip(-5); got != 0 {
		t.Errorf("Skip(-5) = %d, want 0", got)
	}
}

func TestTrimPage_FullPagePlusOne(t *testing.T) {
	rows := make([]int, paging.PageSize+1)
	res := paging.TrimPage(&rows, 1)

	if len(rows) != paging.PageSize {
		t.Errorf("expected trimmed length %d, got %d", paging.PageSize, len(rows))
	}
	if !res.HasNext {
		t.Error("expected HasNext for overfull page")
	}
	if res.HasPrev {
		t.Error("expected no HasPrev on page 1")
	}
}

func TestTrimPage_PartialPage(t *testing.T) {
	rows := make([]int, 3)
	res := paging.TrimPage(&rows, 2)

	if len(rows) != 3 {
		t.Errorf("expected untouched length 3, got %d", len(rows))
	}
	if res.HasNext {
		t.Error("expected no HasNext for partial page")
	}
	if !res.HasPrev {
		t.Error("expected HasPrev on page 2")
	}
}

func TestTrimPage_Empty(t *testing.T) {
	var rows []string
	res := paging.TrimPage(&rows, 1)

	if len(rows) != 0 || res.HasNext || res.HasPrev {
		t.Error("expected empty result for empty page 1")
	}
}
