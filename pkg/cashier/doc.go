// Package cashier runs one till: it owns the current order, looks products
// up in the catalog and drives the order from first item to settled payment.
//
// States
//
//   - NoActiveOrder    nothing in progress (initial, and after settlement)
//   - ActiveOrder      items may be added and removed
//   - AwaitingPayment  receipt produced, total due
//
// A Cashier is not safe for concurrent use; run one per terminal.
package cashier
