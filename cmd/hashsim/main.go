package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gostonefire/hashsim"
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/hashfunc"
	"github.com/gostonefire/hashsim/internal/conf"
	"github.com/gostonefire/hashsim/internal/file"
	"github.com/gostonefire/hashsim/oplog"
)

var (
	size     = flag.Int64("size", conf.DefaultTableSize, "table size")
	strategy = flag.String("strategy", crt.SeparateChaining.String(), "chaining, linear, quadratic or double")
	hashName = flag.String("hash", hashfunc.Division.String(), "division, multiplication, polynomial, universal, midSquare or folding")
	ops      = flag.String("ops", "", `comma separated operations, e.g. "i:3,i:10,s:10,d:3,r" (r inserts a random key)`)
	steps    = flag.Bool("steps", false, "print the step trace of every operation")
	seed     = flag.Int64("seed", 1, "seed of the random key source")
	save     = flag.String("save", "", "write the session to this file when done")
	load     = flag.String("load", "", "start from the session in this file, -size and -strategy are then ignored")
	compare  = flag.Bool("compare", false, "insert the keys of -ops into one table per strategy and compare")
)

type operation struct {
	kind byte
	key  int64
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("hashsim: ")

	operations, err := parseOperations(*ops)
	checkErr(err)

	hashID, err := hashfunc.ParseID(*hashName)
	checkErr(err)

	var hashTable *hashsim.HashTable
	if *load != "" {
		hashTable, hashID, err = loadSession(*load)
		checkErr(err)
		log.Printf("loaded %s: size %d, strategy %s, hash %s, %d key(s)",
			*load, hashTable.TableSize(), hashTable.Strategy(), hashID, hashTable.Len())
	} else {
		s, err := crt.ParseStrategy(*strategy)
		checkErr(err)
		hashTable, err = hashsim.NewHashTable(*size, s)
		checkErr(err)
	}

	hasher, err := hashfunc.Resolve(hashID, nil)
	checkErr(err)
	fmt.Printf("%s: %s\n\n", hashID.Title(), hashID.Formula())

	if *compare {
		runCompare(hashTable.TableSize(), operations, hasher)
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	for _, op := range operations {
		var result hashsim.OperationResult
		var trace *oplog.Trace

		switch op.kind {
		case 'i':
			result, trace, err = hashTable.Insert(op.key, hasher)
		case 's':
			result, trace, err = hashTable.Search(op.key, hasher)
		case 'd':
			result, trace, err = hashTable.Delete(op.key, hasher)
		case 'r':
			_, result, trace, err = hashTable.InsertRandom(rng, hasher)
		}
		checkErr(err)

		if *steps {
			printTrace(trace)
		}
		fmt.Printf("%-6s %4d  success=%-5t index=%-3d probes=%d %s\n",
			trace.Operation, trace.Key, result.Success, result.Index, result.ProbesUsed, result.Reason)
	}

	printTable(hashTable.Snapshot())

	analytics, err := hashTable.Analytics(hasher)
	checkErr(err)
	printAnalytics(analytics)

	if *save != "" {
		checkErr(saveSession(*save, hashTable, hashID))
		log.Printf("saved %s", *save)
	}
}

func runCompare(tableSize int64, operations []operation, hasher hashfunc.Hasher) {
	keys := make([]int64, 0, len(operations))
	for _, op := range operations {
		if op.kind == 'i' {
			keys = append(keys, op.key)
		}
	}

	comparisons, err := hashsim.CompareStrategies(context.Background(), tableSize, keys, hasher)
	checkErr(err)

	fmt.Printf("%-10s %10s %12s %8s %8s %10s\n", "strategy", "collisions", "total probes", "rejected", "keys", "load")
	for _, c := range comparisons {
		fmt.Printf("%-10s %10d %12d %8d %8d %10.3f\n",
			c.Strategy, c.Analytics.Collisions, c.TotalProbes, c.Rejected, c.Analytics.Keys, c.Analytics.LoadFactor)
	}
}

func parseOperations(text string) (operations []operation, err error) {
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if field == "r" {
			operations = append(operations, operation{kind: 'r'})
			continue
		}

		kind, arg, ok := strings.Cut(field, ":")
		if !ok || len(kind) != 1 || !strings.Contains("isd", kind) {
			err = fmt.Errorf("invalid operation %q, expected i:<key>, s:<key>, d:<key> or r", field)
			return
		}

		var key int64
		key, err = strconv.ParseInt(arg, 10, 64)
		if err != nil {
			err = fmt.Errorf("invalid key in operation %q: %w", field, err)
			return
		}
		operations = append(operations, operation{kind: kind[0], key: key})
	}

	return
}

func printTrace(trace *oplog.Trace) {
	fmt.Printf("%s(%d)\n", trace.Operation, trace.Key)
	cursor := oplog.NewCursor(trace)
	for cursor.Next() {
		step, _ := cursor.Current()
		fmt.Printf("  %2d. [%s] %s\n", cursor.Position()+1, step.Kind, step.Message)
	}
}

func printTable(table hashsim.Table) {
	fmt.Printf("\n%s table of size %d\n", table.Strategy, table.TableSize)
	for i, bucket := range table.Buckets {
		keys := make([]string, len(bucket))
		for j, key := range bucket {
			keys[j] = strconv.FormatInt(key, 10)
		}
		fmt.Printf("  [%d] %s\n", i, strings.Join(keys, " -> "))
	}
}

func printAnalytics(analytics hashsim.Analytics) {
	fmt.Printf("\ncollisions=%d probes=%d load=%.3f keys=%d",
		analytics.Collisions, analytics.Probes, analytics.LoadFactor, analytics.Keys)
	if analytics.Misplaced > 0 {
		fmt.Printf(" misplaced=%d", analytics.Misplaced)
	}
	fmt.Println()
}

func loadSession(name string) (hashTable *hashsim.HashTable, hashID hashfunc.ID, err error) {
	f, err := file.OpenSessionFile(name)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	return hashsim.LoadSession(f)
}

func saveSession(name string, hashTable *hashsim.HashTable, hashID hashfunc.ID) (err error) {
	f, err := file.CreateSessionFile(name)
	if err != nil {
		return
	}

	err = hashsim.SaveSession(f, hashTable, hashID)
	if cerr := file.CloseFile(f); err == nil {
		err = cerr
	}
	if err != nil {
		_ = file.RemoveFile(name)
	}

	return
}

func checkErr(err error) {
	if err != nil {
		log.Fatalf("%s", err)
	}
}
