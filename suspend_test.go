package generator

import (
	"testing"
)

func TestEstablishImmediateReturn(t *testing.T) {
	out := Establish(func(suspend Suspend[string, int]) string {
		return "done"
	})
	if out.Suspended() {
		t.Error("a driver that never suspends must produce the returned arm")
	}
	if out.Values != "done" {
		t.Errorf("want=%q got=%q", "done", out.Values)
	}
}

func TestSuspendResume(t *testing.T) {
	out := Establish(func(suspend Suspend[string, int]) string {
		if in := suspend("first"); in != 1 {
			t.Errorf("first resume value: want=1 got=%d", in)
		}
		if in := suspend("second"); in != 2 {
			t.Errorf("second resume value: want=2 got=%d", in)
		}
		return "done"
	})

	if !out.Suspended() || out.Values != "first" {
		t.Fatalf("first outcome: want suspended %q got %v", "first", out.Values)
	}
	out = out.Next.Resume(1)
	if !out.Suspended() || out.Values != "second" {
		t.Fatalf("second outcome: want suspended %q got %v", "second", out.Values)
	}
	out = out.Next.Resume(2)
	if out.Suspended() || out.Values != "done" {
		t.Fatalf("final outcome: want returned %q got %v", "done", out.Values)
	}
}

func TestResumePointIsOneShot(t *testing.T) {
	out := Establish(func(suspend Suspend[int, int]) int {
		suspend(0)
		suspend(0)
		return 0
	})

	rp := out.Next
	rp.Resume(0)

	defer func() {
		if v := recover(); v != ErrStaleResume {
			t.Errorf("want ErrStaleResume got %v", v)
		}
	}()
	rp.Resume(0)
	t.Error("a consumed resume point must not be reusable")
}

func TestStaleResumeAfterReturn(t *testing.T) {
	out := Establish(func(suspend Suspend[int, int]) int {
		suspend(0)
		return 0
	})

	rp := out.Next
	rp.Resume(0) // runs to completion

	defer func() {
		if v := recover(); v != ErrStaleResume {
			t.Errorf("want ErrStaleResume got %v", v)
		}
	}()
	rp.Resume(0)
}

func TestStopRunsDefers(t *testing.T) {
	unwound := false
	out := Establish(func(suspend Suspend[int, int]) int {
		defer func() { unwound = true }()
		for {
			suspend(0)
		}
	})

	out.Next.Stop()
	if !unwound {
		t.Error("stopping a parked scope must run its defers")
	}

	out.Next.Stop() // consumed, no effect
}

func TestDriverPanicSurfacesAtEstablish(t *testing.T) {
	defer func() {
		v := recover()
		pe, ok := v.(*PanicError)
		if !ok {
			t.Fatalf("want *PanicError got %v", v)
		}
		if pe.Value() != "boom" {
			t.Errorf("want original panic value got %v", pe.Value())
		}
	}()
	Establish(func(suspend Suspend[int, int]) int {
		panic("boom")
	})
	t.Error("establish must re-raise the driver's panic")
}

func TestDriverPanicSurfacesAtResume(t *testing.T) {
	out := Establish(func(suspend Suspend[int, int]) int {
		suspend(1)
		panic("boom")
	})
	if !out.Suspended() {
		t.Fatal("want the first outcome to be suspended")
	}

	defer func() {
		v := recover()
		pe, ok := v.(*PanicError)
		if !ok {
			t.Fatalf("want *PanicError got %v", v)
		}
		if pe.Value() != "boom" {
			t.Errorf("want original panic value got %v", pe.Value())
		}
	}()
	out.Next.Resume(0)
	t.Error("resume must re-raise the driver's panic")
}

func TestSuspendAfterScopeFinished(t *testing.T) {
	var leaked Suspend[int, int]
	Establish(func(suspend Suspend[int, int]) int {
		leaked = suspend
		return 0
	})

	defer func() {
		if v := recover(); v != ErrNoScope {
			t.Errorf("want ErrNoScope got %v", v)
		}
	}()
	leaked(1)
	t.Error("suspending a finished scope must panic")
}
