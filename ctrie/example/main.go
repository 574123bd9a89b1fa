package main

import (
	"fmt"
	"os"

	"github.com/radixtools/go-ctrie/ctrie"
)

func main() {
	t := ctrie.New[string]()
	t.Insert("grafana-app", "app")
	t.Insert("grafana-clock-panel", "panel")
	t.Insert("grafana-test", "datasource")
	t.Insert("grafana-testdata", "datasource")
	t.Insert("loki", "datasource")

	t.Dump(os.Stdout)

	for _, key := range []string{"grafana-test-v2", "grafana-", "lokiv3"} {
		pfx, val, ok := t.LongestPrefix(key)
		fmt.Printf("Find(%q) -> %q %q %v\n", key, pfx, val, ok)
	}

	println("------")

	t.Walk("grafana-t", func(kv ctrie.KV[string]) bool {
		fmt.Printf("%s\n", kv.Key)
		return true
	})

	println("------")

	t.Remove("grafana-test")
	t.Remove("grafana-testdata")

	fmt.Printf("compacted %d nodes, keys: %q\n", t.Compact(), t.Keys())

	t.Dump(os.Stdout)
}
