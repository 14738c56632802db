// Package widgets holds the state and timing rules behind the landing page's
// interactive pieces: the animated stat counters and the health-score quiz.
//
// Nothing here touches a UI. Hosts feed in elapsed time, viewport geometry
// and user events, and render whatever values come back.
package widgets
