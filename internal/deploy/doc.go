// Package deploy places existing scripts into the managed tree. It copies
// (or moves, with a same-filesystem rename fast path) a source script onto
// a resolved target path and sets the execute bit.
package deploy
