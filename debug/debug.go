// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging (zero-alloc)
//
// Purpose:
//   - Narrates infrequent events without introducing heap pressure:
//     table delete misses, seed-file failures, harness phase changes.
//
// Notes:
//   - Avoids fmt entirely; messages are plain concatenations pushed to fd 2.
//   - No timestamps, no levels: the consumers are humans reading a demo dump.
//
// ⚠️ Never invoke in hot loops — use only in failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "strtabledemo/utils"

// DropError logs an error with its prefix, or just the prefix when err is
// nil. Writes directly to stderr with no allocation beyond the message
// concatenation itself.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a tagged diagnostic line. Used for delete-miss
// diagnostics, seed-phase narration and shutdown notices.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
