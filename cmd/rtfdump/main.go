// Package main provides the entry point for the rtfdump CLI.
//
// rtfdump interprets stored RTF command streams (JSON arrays or JSON lines,
// optionally gzip-compressed) and prints the resulting documents.
//
// Usage:
//
//	rtfdump letter.jsonl
//	rtfdump --output json --concurrency 4 *.json
//	tokenizer < doc.rtf | rtfdump -
//
// See --help for all available options.
package main

// main is the entry point for rtfdump.
func main() {
	Execute()
}
