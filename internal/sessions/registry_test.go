package sessions

import (
	"sync"
	"testing"
	"time"
)

func TestRegisterAndUnregister(t *testing.T) {
	r := NewRegistry()

	info, done := r.Register(Info{Transport: TransportWeb, Remote: "127.0.0.1:5000"})
	if info.ID == "" {
		t.Fatal("Register() should assign an ID")
	}
	if info.Connected.IsZero() {
		t.Error("Register() should stamp the connection time")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", r.Count())
	}

	got, ok := r.Get(info.ID)
	if !ok || got.Remote != "127.0.0.1:5000" {
		t.Errorf("Get() = %+v, %v", got, ok)
	}

	done()
	done()
	if r.Count() != 0 {
		t.Errorf("Count() = %d after unregister, expected 0", r.Count())
	}
	if _, ok := r.Get(info.ID); ok {
		t.Error("unregistered session should be gone")
	}
}

func TestRegisterKeepsGivenID(t *testing.T) {
	r := NewRegistry()
	info, _ := r.Register(Info{ID: "abcdef0123456789", Transport: TransportSSH, User: "ann"})
	if info.ID != "abcdef0123456789" {
		t.Errorf("ID = %q", info.ID)
	}
	if info.ShortID() != "abcdef01" {
		t.Errorf("ShortID() = %q", info.ShortID())
	}
	if (Info{ID: "abc"}).ShortID() != "abc" {
		t.Error("short IDs should be returned unchanged")
	}
}

func TestCountByAndList(t *testing.T) {
	r := NewRegistry()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	r.Register(Info{ID: "c", Transport: TransportWeb, Connected: base.Add(2 * time.Second)})
	r.Register(Info{ID: "a", Transport: TransportSSH, Connected: base})
	r.Register(Info{ID: "b", Transport: TransportWeb, Connected: base})

	if n := r.CountBy(TransportWeb); n != 2 {
		t.Errorf("CountBy(web) = %d, expected 2", n)
	}
	if n := r.CountBy(TransportSSH); n != 1 {
		t.Errorf("CountBy(ssh) = %d, expected 1", n)
	}

	list := r.List()
	if len(list) != 3 || list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
		t.Errorf("List() order = %+v", list)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, done := r.Register(Info{Transport: TransportWeb})
			r.List()
			r.Count()
			done()
		}()
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", r.Count())
	}
}
