// Command swiper computes minimal ticket allocations for Weight
// Restriction and Weight Qualification instances.
//
// Usage:
//
//	swiper wr [input-file] --tw <rational> --tn <rational>
//	swiper wq [input-file] --tw <rational> --tn <rational>
//
// Input is whitespace-separated rational tokens (p/q, a decimal, or a
// bare integer) read from input-file or, if omitted, stdin. Output is a
// single newline-terminated line: the ticket counts in input order, or
// (with --sum-only) their total.
package main
