package uuid

import (
	"testing"

	guuid "github.com/google/uuid"
)

func TestSystemUUIDHolder_Random(t *testing.T) {
	t.Parallel()

	h := SystemUUIDHolder{}

	first := h.Random()
	second := h.Random()

	if _, err := guuid.Parse(first); err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", first, err)
	}
	if first == second {
		t.Error("two generated UUIDs must not collide")
	}
}
