package services

import "sync"

// SessionState models a user's session lifecycle. The mobile client used a
// bare "isSigningOut" boolean to stop an in-flight data load from
// repopulating state after logout; explicit transitions make the same guard
// race-free.
type SessionState int

const (
    StateAnonymous SessionState = iota
    StateAuthenticated
    StateSigningOut
)

func (s SessionState) String() string {
    switch s {
    case StateAuthenticated:
        return "authenticated"
    case StateSigningOut:
        return "signing_out"
    default:
        return "anonymous"
    }
}

type SessionRegistry struct {
    mu     sync.RWMutex
    states map[uint]SessionState
}

func NewSessionRegistry() *SessionRegistry {
    return &SessionRegistry{states: make(map[uint]SessionState)}
}

func (r *SessionRegistry) State(userID uint) SessionState {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return r.states[userID]
}

// Authenticate marks the user signed in. Valid from any state: a fresh
// login supersedes whatever came before.
func (r *SessionRegistry) Authenticate(userID uint) {
    r.mu.Lock()
    r.states[userID] = StateAuthenticated
    r.mu.Unlock()
}

// BeginSignOut transitions Authenticated -> SigningOut. Returns false when
// the user was not authenticated, in which case nothing changes.
func (r *SessionRegistry) BeginSignOut(userID uint) bool {
    r.mu.Lock()
    defer r.mu.Unlock()
    if r.states[userID] != StateAuthenticated {
        return false
    }
    r.states[userID] = StateSigningOut
    return true
}

// FinishSignOut lands the user in Anonymous.
func (r *SessionRegistry) FinishSignOut(userID uint) {
    r.mu.Lock()
    delete(r.states, userID)
    r.mu.Unlock()
}

// AcceptLoad reports whether a completed data load may still be delivered.
// Loads finishing while the user is signing out or already anonymous are
// discarded.
func (r *SessionRegistry) AcceptLoad(userID uint) bool {
    return r.State(userID) == StateAuthenticated
}
