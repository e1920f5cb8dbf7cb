package authz

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/incharge/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	role, name, id, ok := UserCtx(r)
	if ok {
		t.Fatal("expected ok=false without a session user")
	}
	if role != "visitor" || name != "" || id != primitive.NilObjectID {
		t.Errorf("got (%q, %q, %v)", role, name, id)
	}
}

func TestUserCtx_ValidUser(t *testing.T) {
	oid := primitive.NewObjectID()
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   oid.Hex(),
		Name: "Priya",
		Role: "Head",
	})

	role, name, id, ok := UserCtx(r)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != "head" {
		t.Errorf("role = %q, want lowercased %q", role, "head")
	}
	if name != "Priya" || id != oid {
		t.Errorf("got (%q, %v)", name, id)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   "not-an-object-id",
		Role: "employee",
	})

	if _, _, _, ok := UserCtx(r); ok {
		t.Error("malformed id must fail closed")
	}
}

func TestActorName(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Email: "p@agency.test",
	})
	if got := ActorName(r); got != "p@agency.test" {
		t.Errorf("ActorName fallback = %q, want email", got)
	}
}
