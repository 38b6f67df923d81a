package services

import "testing"

func TestSessionLifecycle(t *testing.T) {
    r := NewSessionRegistry()
    const uid = 42

    if r.State(uid) != StateAnonymous {
        t.Fatal("fresh registry should report anonymous")
    }

    r.Authenticate(uid)
    if r.State(uid) != StateAuthenticated {
        t.Fatal("expected authenticated after login")
    }

    if !r.BeginSignOut(uid) {
        t.Fatal("sign-out from authenticated must succeed")
    }
    if r.State(uid) != StateSigningOut {
        t.Fatal("expected signing_out")
    }

    r.FinishSignOut(uid)
    if r.State(uid) != StateAnonymous {
        t.Fatal("expected anonymous after sign-out completes")
    }
}

func TestBeginSignOutRequiresAuthenticated(t *testing.T) {
    r := NewSessionRegistry()
    if r.BeginSignOut(7) {
        t.Error("sign-out of an anonymous user must be a no-op")
    }

    r.Authenticate(7)
    r.BeginSignOut(7)
    if r.BeginSignOut(7) {
        t.Error("double sign-out must not transition twice")
    }
}

// A data load finishing after sign-out started must be discarded.
func TestLoadDiscardedDuringSignOut(t *testing.T) {
    r := NewSessionRegistry()
    const uid = 9

    r.Authenticate(uid)
    if !r.AcceptLoad(uid) {
        t.Fatal("load while authenticated must be accepted")
    }

    r.BeginSignOut(uid)
    if r.AcceptLoad(uid) {
        t.Error("load completing during sign-out must be discarded")
    }

    r.FinishSignOut(uid)
    if r.AcceptLoad(uid) {
        t.Error("load completing after sign-out must be discarded")
    }
}

func TestReloginSupersedesSignOut(t *testing.T) {
    r := NewSessionRegistry()
    const uid = 5

    r.Authenticate(uid)
    r.BeginSignOut(uid)
    r.Authenticate(uid) // fresh login wins
    if !r.AcceptLoad(uid) {
        t.Error("fresh login must accept loads again")
    }
}
