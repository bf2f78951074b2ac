package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"vision-chat/internal/domain"
)

func TestCollectionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[domain.User](filepath.Join(dir, "users.json"))

	want := []domain.User{}
	for i := 0; i < 5; i++ {
		want = append(want, domain.User{
			ID:           string(rune('a' + i)),
			Username:     "user" + string(rune('0'+i)),
			PasswordHash: "$2a$10$hash" + string(rune('0'+i)),
			CreatedAt:    time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	if err := col.WriteAll(want); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := col.ReadAll()
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestCollectionMissingFileReadsEmpty(t *testing.T) {
	col := NewCollection[domain.User](filepath.Join(t.TempDir(), "nope.json"))
	got := col.ReadAll()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestCollectionCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	col := NewCollection[domain.User](path)
	if got := col.ReadAll(); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestCollectionAppendPreservesOrder(t *testing.T) {
	col := NewCollection[domain.Message](filepath.Join(t.TempDir(), "messages.json"))

	ids := []string{"m1", "m2", "m3", "m4"}
	for _, id := range ids {
		if err := col.Append(domain.Message{ID: id, SessionID: "s1", Role: "user", Content: "x"}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got := col.ReadAll()
	if len(got) != len(ids) {
		t.Fatalf("expected %d messages, got %d", len(ids), len(got))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestCollectionWriteNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	col := NewCollection[domain.User](path)
	if err := col.WriteAll(nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array on disk, got %q", string(data))
	}
}

func TestCollectionConcurrentAppends(t *testing.T) {
	col := NewCollection[domain.Message](filepath.Join(t.TempDir(), "messages.json"))

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_ = col.Append(domain.Message{ID: "m", SessionID: "s1", Role: "user", Content: "x"})
		}(i)
	}
	wg.Wait()

	if got := len(col.ReadAll()); got != n {
		t.Fatalf("expected %d messages after concurrent appends, got %d", n, got)
	}
}
