// Command recisdb is the CLI surface over this module's descrambling
// packages: checksignal probes a tuner, tune reads and decodes straight
// from a tuner, and decode descrambles an already-captured stream file.
package main

func main() {
	Execute()
}
