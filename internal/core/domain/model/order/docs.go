// Package order contains the order aggregate and its status state machine.
//
// An order is placed against a table and carries an immutable list of line
// items whose prices were snapshotted at creation time. The total is frozen
// at creation and never recomputed. Status moves along
// pending → preparing → ready → delivered; cancellation is a separate,
// explicit path reachable from any non-terminal status. Delivered and
// cancelled are terminal. Orders are never deleted: cancellation is a status,
// not a removal.
package order
