// Package commands defines the cafe CLI.
//
// Commands
//
//   - menu       Print the catalog
//   - register   Run an interactive till on this terminal
//   - printer    Print receipts queued by the tills
//   - seed       Load the default menu into the products table
//   - hash       Hash a cashier password for CAFE_CASHIERS
//
// Settings come from the same environment variables as the API server;
// persistent flags override them.
package commands
