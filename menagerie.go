package menagerie

import "github.com/jward/menagerie/internal/store"

// Public type aliases for internal store types used in the Keeper
// API. These are Go type aliases (=) — identical to the internal
// types at compile time, so external consumers never import
// internal/store directly.

type Store = store.Store
type Record = store.Record
