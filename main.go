// ════════════════════════════════════════════════════════════════════════════════════════════════
// Chained String Table - Demo Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Fixed-Capacity String Table
// Component: Console Demo & Bucket Dump
//
// Description:
//   Drives the strtable package through its full surface: seed, probe, dump,
//   delete, dump again, teardown. Seed data comes from the built-in sample
//   cast, a JSON file, or a SQLite database.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"
	"os"

	"strtabledemo/debug"
	"strtabledemo/strtable"
	"strtabledemo/utils"
)

// builtinSeed is the sample phonebook used when no external source is given.
var builtinSeed = []SeedRecord{
	{Key: "Charlie", Value: "(634) 466-1630"},
	{Key: "Mac", Value: "1-436-705-3673"},
	{Key: "Dee", Value: "1-214-717-1808"},
	{Key: "Dennis", Value: "(491) 584-6065"},
	{Key: "Frank", Value: "(215) 717-0904"},
}

func main() {
	buckets := flag.Int("buckets", 11, "bucket count for the table (prime recommended)")
	seedJSON := flag.String("seed", "", "optional JSON seed file ([{\"key\":...,\"value\":...}])")
	seedDB := flag.String("db", "", "optional SQLite seed database (contacts table)")
	flag.Parse()

	// PHASE 0: Load seed records
	records := builtinSeed
	switch {
	case *seedJSON != "":
		loaded, err := loadSeedJSON(*seedJSON)
		if err != nil {
			debug.DropError("SEED_ERROR", err)
			os.Exit(1)
		}
		records = loaded
	case *seedDB != "":
		loaded, err := loadSeedDB(*seedDB)
		if err != nil {
			debug.DropError("SEED_ERROR", err)
			os.Exit(1)
		}
		records = loaded
	}
	debug.DropMessage("INIT", utils.Itoa(len(records))+" seed records, "+utils.Itoa(*buckets)+" buckets")

	// PHASE 1: Build and seed the table
	table, err := strtable.New(*buckets, 0)
	if err != nil {
		debug.DropError("TABLE_ERROR", err)
		os.Exit(1)
	}
	for _, r := range records {
		if err := table.Put(r.Key, r.Value); err != nil {
			debug.DropError("PUT_ERROR", err)
			os.Exit(1)
		}
	}
	debug.DropMessage("SEEDED", utils.Itoa(table.Len())+" entries")

	// PHASE 2: Probe a known miss and a known hit
	probe(table, "Agamemnon")
	probe(table, "Dennis")

	dumpTable(table)

	// PHASE 3: Delete a missing key, then a present one
	if err := table.Delete("Agamemnon"); err != nil {
		debug.DropError("DELETE_MISS", err)
	}
	if err := table.Delete("Dennis"); err != nil {
		debug.DropError("DELETE_MISS", err)
	} else {
		debug.DropMessage("DELETED", "Dennis")
	}

	dumpTable(table)

	// PHASE 4: Teardown
	table.Reset()
	debug.DropMessage("DONE", utils.Itoa(table.Len())+" entries after reset")
}

// probe looks key up and narrates the outcome.
func probe(t *strtable.Table, key string) {
	if v, ok := t.Get(key); ok {
		debug.DropMessage("FOUND", key+": "+v)
	} else {
		debug.DropMessage("MISS", key+" not found")
	}
}

// bucketLine renders one bucket in the dump format, chains head→tail:
//
//	[0]: (Mac, 1-436-705-3673) -> NULL
//
// Empty buckets render as "[i]: NULL" so the fixed capacity stays visible.
func bucketLine(t *strtable.Table, slot int) string {
	line := "[" + utils.Itoa(slot) + "]: "
	t.ScanSlot(slot, func(key, value string) bool {
		line += "(" + key + ", " + value + ") -> "
		return true
	})
	return line + "NULL"
}

// dumpTable prints every bucket in index order.
func dumpTable(t *strtable.Table) {
	for i := 0; i < t.Capacity(); i++ {
		utils.PrintWarning(bucketLine(t, i) + "\n")
	}
}
