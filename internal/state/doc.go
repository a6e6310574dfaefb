// Package state owns the tab list and active tab for the community screen.
//
// The navigation controller never stores the active tab. Store is the
// external owner: the UI reads a Snapshot on every update, passes it to
// Controller.Initialize, and hands Store.SetActive over as the setter.
//
//	key press ──> Controller listener ──> Store.SetActive(id)
//	                                             │
//	next Update <── Store.Snapshot() <───────────┘
//
// Store uses a sync.RWMutex so the composition root can read the final
// active tab after the program exits. Snapshots copy the tab slice so a
// caller cannot mutate stored state. The zero value is ready to use.
package state
