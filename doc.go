// Package pocket provides the types and functions for keeping a personal ledger of
// expenses and incomes. It is designed to be local-first and simple: the whole ledger
// is a starting balance followed by a list of records, stored as a plain text file the
// user can read and edit.
//
// The core functionalities include:
//   - Category Tree: a fixed hierarchy of categories (e.g. "expense" > "food" > "meal")
//     used to validate records and to search a category with all its subcategories.
//   - Ledger Management: adding, listing, deleting and finding records, and computing
//     the current balance.
//   - Data Persistence: encoding and decoding a ledger to and from its flat file format.
//
// This package serves as the foundational logic for the `pkt` command-line tool.
package pocket
